package storage

import "context"

//go:generate moq -out storage_mock.go . Storage

// Storage is the durable key-value substrate the diary is persisted to.
// Values are opaque serialized blobs; the substrate never interprets them.
type Storage interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	// Readers never observe a partially written value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the substrate. Any later call returns ErrStorageClosed.
	Close() error
}

// BatchDeleter is implemented by substrates that can remove several keys
// in one all-or-nothing operation.
type BatchDeleter interface {
	DeleteKeys(ctx context.Context, keys ...string) error
}
