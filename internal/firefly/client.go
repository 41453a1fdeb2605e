// Package firefly implements a client for the Firefly III REST API:
// credential resolution, authenticated request execution, and normalization
// of the remote JSON into stable result shapes for a calling agent.
package firefly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lchavezpozo/firefly-plugin-openclaw/internal/logger"
)

// Client talks to one Firefly III instance. All state is fixed at
// construction, so a single Client is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The default client has
// no timeout: a request against an unresponsive ledger waits until its
// context is cancelled. Pass a client with Timeout set to bound every call.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger replaces the default logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New resolves credentials from cfg and returns a ready client. A trailing
// slash on the base URL is stripped once so endpoint paths join verbatim.
func New(cfg Config, opts ...Option) (*Client, error) {
	creds, err := ResolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(creds.URL, "/"),
		token:      creds.Token,
		httpClient: http.DefaultClient,
		log:        logger.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do executes one authenticated request against the ledger and decodes the
// JSON response into out. A 204 response, or a nil out, skips decoding.
// Caller headers win over the defaults on key collision. Non-2xx statuses
// become an *APIError carrying the raw body.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, headers http.Header, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, endpoint, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Trace-Id", uuid.NewString())
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Msg("Ledger request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The body stream can be consumed only once; read it before
		// constructing the error.
		text, _ := io.ReadAll(resp.Body)
		// resp.Status carries the server's own reason phrase, which
		// http.StatusText would discard (and drop entirely for codes it
		// does not know).
		status := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" ")
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     status,
			Body:       string(text),
		}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}
