package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
)

// KVRepository reads and writes raw values by key
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository wraps an initialized database
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get returns the value stored under key; found is false when the key has
// never been written.
func (r *KVRepository) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	err = r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Put writes all entries in one transaction, so readers see either all of
// them or none.
func (r *KVRepository) Put(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	// deterministic write order keeps lock acquisition predictable
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, key := range keys {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
			`, key, entries[key])
			if err != nil {
				return fmt.Errorf("failed to write key %q: %w", key, err)
			}
		}
		return nil
	})
}

// Delete removes keys; missing keys are ignored
func (r *KVRepository) Delete(ctx context.Context, keys ...string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
				return fmt.Errorf("failed to delete key %q: %w", key, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database
func (r *KVRepository) Close() error {
	return r.db.Close()
}
