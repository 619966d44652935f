// Package sqlite implements the keyword and chart stores on an embedded
// SQLite database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection.
type DB struct {
	conn *sql.DB
}

// Open opens the database file at path and creates the schema if absent.
// A single connection is kept open so writes are serialized in-process and
// ":memory:" databases behave like files.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}

func dsn(path string) string {
	pragmas := "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if path != ":memory:" {
		pragmas += "&_pragma=journal_mode(WAL)"
	}
	if strings.Contains(path, "?") {
		return "file:" + path + "&" + pragmas
	}
	return "file:" + path + "?" + pragmas
}

func (db *DB) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS search_count (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		keyword TEXT UNIQUE NOT NULL,
		count INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_search_count_count ON search_count(count DESC, keyword ASC);

	CREATE TABLE IF NOT EXISTS melon_chart_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ranking INTEGER NOT NULL,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		UNIQUE(ranking)
	);
	`

	_, err := db.conn.ExecContext(ctx, schema)
	return err
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
