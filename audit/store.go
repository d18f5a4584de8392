// Package audit keeps a console-local activity log: one row per completed
// operation (logins, content writes, deletes). It is telemetry about what
// the operator did, not a copy of backend state.
package audit

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Event is one recorded operation.
type Event struct {
	ID       int64
	At       string // RFC 3339 UTC
	Action   string // "create", "update", "delete", "bulk-delete", "login", "link-seo", "unlink-seo"
	Entity   string // "blog", "service", "lead", "seo", "session"
	EntityID string
	Detail   string
}

// Store wraps a SQLite database holding the activity log.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path, ensures the data
// directory exists, and runs schema setup.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL with a busy timeout so the request goroutines never see
	// SQLITE_BUSY; synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    at TEXT NOT NULL,
    action TEXT NOT NULL,
    entity TEXT NOT NULL,
    entity_id TEXT NOT NULL,
    detail TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_at ON events(at);
`)
	return err
}

// Append records one completed operation. The timestamp is assigned here.
func (s *Store) Append(action, entity, entityID, detail string) error {
	_, err := s.db.Exec(
		`INSERT INTO events (at, action, entity, entity_id, detail) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), action, entity, entityID, detail,
	)
	return err
}

// Recent returns the newest events, most recent first.
func (s *Store) Recent(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, at, action, entity, entity_id, detail FROM events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.At, &e.Action, &e.Entity, &e.EntityID, &e.Detail); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
