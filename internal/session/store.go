package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Store persists a single bearer token between runs.
//
// A missing token is the normal logged-out state, not an error, so Read
// reports presence with a bool instead of an error.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the token to disk. The token is stored as-is: the backend is
// the authority on well-formedness, not this client.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0600)
}

// Read returns the stored token, or ("", false) when logged out.
func (s *Store) Read() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored token. Clearing an already-absent token is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
