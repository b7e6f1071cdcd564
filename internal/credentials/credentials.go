// Package credentials persists the username and API token used to talk
// to Strongspace. The file uses the same key=value format as the config
// file and is only readable by its owner.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/strongspace/cli/internal/config"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/paths"
)

const (
	keyUsername = "username"
	keyToken    = "token"
)

// Store reads and writes a credentials file.
type Store struct {
	path string
}

// NewStore returns a store backed by the default credentials file.
func NewStore() (*Store, error) {
	path, err := paths.CredentialsFilePath()
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// NewStoreAt returns a store backed by the file at path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the credentials file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored credentials. A missing file yields empty credentials.
func (s *Store) Load() (domain.Credentials, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return domain.Credentials{}, nil
	}

	lines, err := config.ReadLinesFrom(s.path)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	values, err := config.Parse(lines)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("parse credentials: %w", err)
	}

	return domain.Credentials{
		Username: values[keyUsername],
		Token:    values[keyToken],
	}, nil
}

// Save replaces the stored credentials.
func (s *Store) Save(c domain.Credentials) error {
	lines := []string{
		keyUsername + "=" + c.Username,
		keyToken + "=" + c.Token,
	}
	err := config.WithFileLock(s.path, func() error {
		return config.WriteLinesTo(s.path, lines)
	})
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear deletes the credentials file.
func (s *Store) Clear() error {
	return config.WithFileLock(s.path, func() error {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove credentials: %w", err)
		}
		return nil
	})
}

// Verify Store implements domain.CredentialStore
var _ domain.CredentialStore = (*Store)(nil)
