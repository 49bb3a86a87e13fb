// Package sqlite implements the SQLite storage backend for Backtrail.
package sqlite

// Schema DDL for session navigation state. Attach runs these on every open,
// so the statements must be idempotent: stored sessions survive restarts.
const createNavState = `CREATE TABLE IF NOT EXISTS nav_state (
    session_id TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (session_id, key)
);`

const idxNavStateSession = `CREATE INDEX IF NOT EXISTS idx_nav_state_session ON nav_state(session_id);`

// schemaDDL lists all schema statements in execution order.
var schemaDDL = []string{
	createNavState,
	idxNavStateSession,
}
