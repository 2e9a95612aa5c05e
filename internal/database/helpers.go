package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// withTx runs fn in one transaction, committing only when fn succeeds
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Warn("kv transaction rollback failed", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit kv transaction: %w", err)
	}
	return nil
}
