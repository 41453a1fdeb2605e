package firefly

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config carries the connection settings for one Firefly III instance.
// Either URL and Token are set directly, or CredentialsPath points at a JSON
// file holding them. A leading "~/" in CredentialsPath is expanded to the
// user's home directory.
type Config struct {
	URL             string
	Token           string
	CredentialsPath string
}

// Credentials is a resolved url+token pair.
type Credentials struct {
	URL   string `json:"url" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// ResolveCredentials turns a Config into usable Credentials. A direct
// url+token pair wins; otherwise the credentials file is read. With neither
// source present the error is ErrNotConfigured.
func ResolveCredentials(cfg Config) (Credentials, error) {
	if cfg.URL != "" && cfg.Token != "" {
		return Credentials{URL: cfg.URL, Token: cfg.Token}, nil
	}

	if cfg.CredentialsPath != "" {
		return loadCredentialsFile(cfg.CredentialsPath)
	}

	return Credentials{}, ErrNotConfigured
}

func loadCredentialsFile(path string) (Credentials, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("expand credentials path %q: %w", path, err)
	}

	content, err := os.ReadFile(expanded)
	if err != nil {
		return Credentials{}, fmt.Errorf("read credentials file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(content, &creds); err != nil {
		return Credentials{}, &CredentialsFileError{Err: err}
	}
	if err := validate.Struct(creds); err != nil {
		return Credentials{}, &CredentialsFileError{Err: errors.New("missing url or token")}
	}

	return creds, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return filepath.Abs(path)
}
