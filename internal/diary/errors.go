package diary

import "errors"

var (
	// ErrNotFound indicates that no entry has the given id
	ErrNotFound = errors.New("entry not found")

	// ErrNotLoaded indicates a mutation before Load completed. Writing then
	// would overwrite the stored collection with an empty one.
	ErrNotLoaded = errors.New("store is not loaded")
)
