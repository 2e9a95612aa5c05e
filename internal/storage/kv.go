// Package storage saves the board into a key-value backend, the way the web
// client kept it in browser local storage: one key for the columns, one for
// the tasks, each holding a JSON array.
package storage

import (
	"context"
	"errors"

	"github.com/unitime/unitime/internal/database"
)

// KV is a minimal key-value backend
type KV interface {
	// Get returns the value under key; found is false if it was never set
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Put writes every entry in key order. SQLite (one transaction) and
	// Redis (MSET) write them atomically; the file backend only makes each
	// key atomic on its own.
	Put(ctx context.Context, entries map[string][]byte) error
	// Delete removes keys; missing keys are not an error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Compile-time verification that the SQLite repository is a KV backend
var _ KV = (*database.KVRepository)(nil)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)
