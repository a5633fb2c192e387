// Package filestore keeps every key in its own JSON file under a base
// directory. Writes go to a temp file first and are renamed into place, so a
// reader sees either the old or the new value.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/iudanet/gophdiary/internal/storage"
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Storage is a directory-backed key-value store.
type Storage struct {
	base   string
	closed bool
}

// New creates the base directory if needed.
func New(base string) (*Storage, error) {
	if err := os.MkdirAll(base, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating directory %s: %w", base, err)
	}
	return &Storage{base: base}, nil
}

func (s *Storage) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.base, key+".json"), nil
}

// Get reads the file for key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return data, nil
}

// Set atomically writes the file for key.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if s.closed {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}

	// Atomic write: write to a uniquely named temp file then rename.
	tmp, err := os.CreateTemp(s.base, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Delete removes the file for key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if s.closed {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage error removing %s: %w", path, err)
	}
	return nil
}

// Close marks the store closed. There are no open handles to release.
func (s *Storage) Close() error {
	s.closed = true
	return nil
}
