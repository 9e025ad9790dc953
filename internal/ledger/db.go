// Package ledger records completed reservations in SQLite. The ledger is a
// best-effort side channel: the reply to the user is already decided before
// anything is written here, and a write failure never reaches the user.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	service TEXT NOT NULL,
	staff TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	price INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations(user_id);
CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations(date, time);
`

// OpenDB opens the ledger database at the given path, creating parent
// directories as needed. ":memory:" opens an in-memory database. WAL mode is
// set for concurrent reads and the schema is applied on open.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return db, nil
}
