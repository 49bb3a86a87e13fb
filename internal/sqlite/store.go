package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ledgerline/backtrail/pkg/types"
)

// dbFileName is the database file created inside DataDir.
const dbFileName = "sessions.db"

var _ types.Store = (*Store)(nil)

// Store implements types.Store using a single SQLite database. Values are
// keyed by (session_id, key) in the nav_state table.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new SQLite store instance. The store is not attached;
// call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates
// DataDir if it does not exist, opens the database, and applies the schema.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent. After Detach, all operations
// return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
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

	var value string
	err := s.db.QueryRow(
		"SELECT value FROM nav_state WHERE session_id = ? AND key = ?",
		session, key,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", session, key, err)
	}
	return []byte(value), nil
}

// Set stores value under (session, key), replacing any existing value.
func (s *Store) Set(session, key string, value []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if err := validateKeys(session, key); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO nav_state (session_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		session, key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", session, key, err)
	}
	return nil
}

// Delete removes the value stored under (session, key). Absent keys are
// not an error.
func (s *Store) Delete(session, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if err := validateKeys(session, key); err != nil {
		return err
	}

	if _, err := s.db.Exec(
		"DELETE FROM nav_state WHERE session_id = ? AND key = ?",
		session, key,
	); err != nil {
		return fmt.Errorf("delete %s/%s: %w", session, key, err)
	}
	return nil
}

// Sessions returns the distinct session IDs with stored state, sorted.
func (s *Store) Sessions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT DISTINCT session_id FROM nav_state ORDER BY session_id")
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
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
