package memory

import (
	"context"
	"sync"

	"github.com/iudanet/gophdiary/internal/storage"
)

// Storage keeps values in a map. Nothing survives the process.
type Storage struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.DeleteKeys(ctx, key)
}

func (s *Storage) DeleteKeys(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
