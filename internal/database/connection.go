// Package database is the durable local storage layer: a single SQLite
// file holding the versioned learner-state record and the append-only
// review log.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite connection shared by the repositories.
type DB struct {
	conn *sqlx.DB
}

// Connect opens (creating if necessary) the database at path and
// initializes the schema.
func Connect(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	conn, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite doesn't support multiple writers.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}
	if err := db.initializeSchema(); err != nil {
		return nil, err
	}
	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initializeSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS learner_state (
			key TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			data TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create learner_state table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS review_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word_id INTEGER NOT NULL,
			known BOOLEAN NOT NULL,
			difficulty TEXT NOT NULL,
			reviewed_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create review_log table: %w", err)
	}

	return nil
}
