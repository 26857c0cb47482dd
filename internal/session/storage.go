package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNoSession signals an absent durable entry.
var ErrNoSession = errors.New("no saved session")

// Store is the durable home of the session entry.
type Store interface {
	Read(ctx context.Context) (*User, error)
	Write(ctx context.Context, u *User) error
	Delete(ctx context.Context) error
}

// FileStore keeps the entry as one JSON file, the local-storage analogue of
// the mobile app.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Read(ctx context.Context) (*User, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (f *FileStore) Write(ctx context.Context, u *User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o600)
}

func (f *FileStore) Delete(ctx context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
