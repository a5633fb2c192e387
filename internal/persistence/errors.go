package persistence

import "errors"

var (
	// ErrWriteFailed indicates that a save did not complete.
	// The caller's in-memory state is still authoritative.
	ErrWriteFailed = errors.New("storage write failed")
)
