package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens a SQLite database with WAL mode and foreign keys enabled,
// creating the schema on first use.
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := ensureSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return &DB{conn: conn, Path: path}, nil
}

func ensureSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			payload TEXT NOT NULL DEFAULT '{}',
			pos_x REAL NOT NULL DEFAULT 0,
			pos_y REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS edges (
			id TEXT PRIMARY KEY,
			source_id TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
			source_handle TEXT NOT NULL DEFAULT 'out',
			target_id TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
			target_handle TEXT NOT NULL DEFAULT 'in',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target_id);
		CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source_id);
		CREATE TABLE IF NOT EXISTS images (
			id TEXT PRIMARY KEY,
			node_id TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
			model TEXT NOT NULL DEFAULT '',
			prompt TEXT NOT NULL DEFAULT '',
			mime TEXT NOT NULL DEFAULT 'image/png',
			data BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
	`)
	return err
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}
