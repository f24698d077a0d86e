// Package session persists the resident's credential between runs: the
// bearer token and the resident id handed back by login. There is no expiry
// tracking here; a 401 from the server is the only expiry signal.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"resipass/internal/common"
)

// Session is the stored credential.
type Session struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	ResidentID int    `json:"residente_id"`
}

// Store abstracts credential persistence so services can be tested with an
// in-memory fake.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore keeps the session in a JSON file readable only by the owner.
type FileStore struct {
	path string
}

// NewFileStore builds a FileStore at path. An empty path selects the
// per-user default under the OS config directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "resipass", "session.json")
	}
	return &FileStore{path: path}, nil
}

// Load reads the stored session. A missing file means common.ErrNoSession.
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrNoSession
		}
		return nil, fmt.Errorf("cannot read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot parse session file: %w", err)
	}
	if s.Token == "" {
		return nil, common.ErrNoSession
	}
	return &s, nil
}

// Save writes the session, creating the parent directory if needed.
func (f *FileStore) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("cannot create session dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write session file: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove session file: %w", err)
	}
	return nil
}
