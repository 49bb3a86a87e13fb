package types

import "errors"

// Store defines the interface for session-scoped key-value storage.
// Callers attach to a backend, read and write values keyed by session and
// key, and detach when done. All implementations are safe for concurrent use.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Idempotent on first call;
	// returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// Get returns the value stored under (session, key).
	// Returns ErrKeyNotFound if no value is stored.
	Get(session, key string) ([]byte, error)

	// Set stores value under (session, key), replacing any existing value.
	Set(session, key string, value []byte) error

	// Delete removes the value stored under (session, key).
	// Deleting an absent key succeeds.
	Delete(session, key string) error

	// Sessions returns the distinct session IDs with stored state,
	// sorted lexically.
	Sessions() ([]string, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Store operation errors.
var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrInvalidSession = errors.New("session must not be empty")
	ErrInvalidKey     = errors.New("key must not be empty")
)
