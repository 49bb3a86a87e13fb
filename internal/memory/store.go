// Package memory implements an in-process storage backend for Backtrail.
// State lives for the lifetime of the process only; it backs the "memory"
// backend selection and the unit tests.
package memory

import (
	"sort"
	"sync"

	"github.com/ledgerline/backtrail/pkg/types"
)

var _ types.Store = (*Store)(nil)

// Store implements types.Store with a map guarded by a RWMutex.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	sessions map[string]map[string][]byte
}

// NewStore creates a new memory store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store. Returns ErrAlreadyAttached if already
// attached. DataDir is ignored; memory stores hold no files.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.config = config
	s.sessions = make(map[string]map[string][]byte)
	s.attached = true
	return nil
}

// Detach discards all state. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.sessions = nil
	s.attached = false
	return nil
}

// Get returns the value stored under (session, key).
func (s *Store) Get(session, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if err := validateKeys(session, key); err != nil {
		return nil, err
	}

	value, ok := s.sessions[session][key]
	if !ok {
		return nil, types.ErrKeyNotFound
	}
	// Copy so callers cannot mutate stored state.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under (session, key).
func (s *Store) Set(session, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if err := validateKeys(session, key); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if s.sessions[session] == nil {
		s.sessions[session] = make(map[string][]byte)
	}
	s.sessions[session][key] = stored
	return nil
}

// Delete removes the value stored under (session, key). Absent keys are
// not an error.
func (s *Store) Delete(session, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if err := validateKeys(session, key); err != nil {
		return err
	}

	delete(s.sessions[session], key)
	if len(s.sessions[session]) == 0 {
		delete(s.sessions, session)
	}
	return nil
}

// Sessions returns the session IDs with stored state, sorted.
func (s *Store) Sessions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func validateKeys(session, key string) error {
	if session == "" {
		return types.ErrInvalidSession
	}
	if key == "" {
		return types.ErrInvalidKey
	}
	return nil
}
