package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"multi-calendar-sync/internal/user/repository"
	"multi-calendar-sync/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	email      TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS accounts (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id       INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL,
	scope         TEXT,
	token_type    TEXT,
	expiry_date   INTEGER
);

CREATE INDEX IF NOT EXISTS idx_accounts_access_token ON accounts(access_token);

CREATE TABLE IF NOT EXISTS event_history (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	event_id       TEXT NOT NULL,
	summary        TEXT NOT NULL,
	start_datetime TIMESTAMP NOT NULL,
	end_datetime   TIMESTAMP NOT NULL
);
`

// Open opens (creating if needed) the SQLite user store at path and
// initializes the schema. WAL mode plus a single connection avoids
// "database is locked" errors under concurrent batches.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the user domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlite.%s", method)
}
