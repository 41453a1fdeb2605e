package firefly

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when the configuration carries neither a
// direct url+token pair nor a credentials path.
var ErrNotConfigured = errors.New("Firefly III not configured. Provide url+token or credentialsPath.")

// CredentialsFileError reports a credentials file that exists but does not
// yield a usable url+token pair.
type CredentialsFileError struct {
	Err error
}

func (e *CredentialsFileError) Error() string {
	return fmt.Sprintf("Invalid credentials file: %v", e.Err)
}

func (e *CredentialsFileError) Unwrap() error { return e.Err }

// APIError is returned when the ledger responds with a non-2xx status. It
// carries the raw response body so callers can surface the remote message.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Firefly API error: %d %s - %s", e.StatusCode, e.Status, e.Body)
}

// AccountNotFoundError reports a source account name that matched no asset
// account. Available holds every asset-account name the ledger returned, so
// the message is self-describing.
type AccountNotFoundError struct {
	Name      string
	Available []string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("Account '%s' not found. Available: %s", e.Name, strings.Join(e.Available, ", "))
}

// DestinationNotFoundError reports a transfer destination that matched no
// asset account. Unlike AccountNotFoundError it does not enumerate the
// available accounts; the asymmetry is longstanding behavior, kept as is.
type DestinationNotFoundError struct {
	Name string
}

func (e *DestinationNotFoundError) Error() string {
	return fmt.Sprintf("Destination account '%s' not found.", e.Name)
}
