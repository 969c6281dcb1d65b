package reconcile

import "errors"

var (
	// ErrConnection marks a failure to read from the store.
	ErrConnection = errors.New("store unavailable")
	// ErrCommit marks a write the store did not persist.
	ErrCommit = errors.New("store commit failed")
)
