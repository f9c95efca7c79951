package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// DB wraps sql.DB with the summary history operations
type DB struct {
	*sql.DB
}

// New opens the history database at path
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "database open failed")
	}

	// Several invocations in a shell pipeline may append at once
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA busy_timeout=5000")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema(ctx context.Context) error {
	schema := `
    CREATE TABLE IF NOT EXISTS ping_summaries (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        parsed_at INTEGER NOT NULL, -- unix milliseconds
        host TEXT NOT NULL,
        sent TEXT NOT NULL,
        received TEXT NOT NULL,
        packet_loss TEXT NOT NULL,
        min_ping TEXT NOT NULL,
        avg_ping TEXT NOT NULL,
        max_ping TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_host_parsed_at ON ping_summaries(host, parsed_at);
    `

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "schema creation failed")
	}

	return nil
}
