// Package store persists the client's single durable key: the bearer
// token. It is the process analogue of the browser's keyed local storage —
// login writes it, logout clears it, every navigation reads it.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"tiffin/internal/domain/service"
)

// TokenKey is the fixed name the token is stored under.
const TokenKey = "authToken"

type fileStore struct {
	path string
}

// NewFileStore is the constructor for the file-backed TokenStore. The
// token lives in a single file named after the fixed key inside dir; the
// directory is created on first save.
func NewFileStore(dir string) service.TokenStore {
	return &fileStore{path: filepath.Join(dir, TokenKey)}
}

// Load returns the stored token, or service.ErrNoToken when the key has
// never been written or was cleared.
func (s *fileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", service.ErrNoToken
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read token store")
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", service.ErrNoToken
	}

	return token, nil
}

// Save overwrites any previously stored token.
func (s *fileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create token store directory")
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "failed to write token store")
	}

	return nil
}

// Clear removes the stored token. Clearing an empty store is a no-op.
func (s *fileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear token store")
	}

	return nil
}
