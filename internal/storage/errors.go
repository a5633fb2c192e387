package storage

import "errors"

// Common storage errors
var (
	// ErrKeyNotFound indicates that nothing is stored under the key
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
