package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// One row per saved key; values are opaque to the database
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
