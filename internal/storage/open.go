package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/unitime/unitime/internal/database"
)

// Options selects and configures a backend
type Options struct {
	Backend string
	// DataDir holds the SQLite database and the file backend's JSON files
	DataDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open connects the backend named by opts.Backend
func Open(ctx context.Context, opts Options, logger *slog.Logger) (KV, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch opts.Backend {
	case BackendSQLite, "":
		path := filepath.Join(opts.DataDir, database.DefaultFileName)
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.Debug("storage opened", "backend", BackendSQLite, "path", path)
		return database.NewKVRepository(db), nil

	case BackendFile:
		kv, err := NewFileKV(opts.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("storage opened", "backend", BackendFile, "dir", opts.DataDir)
		return kv, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.RedisAddr, err)
		}
		logger.Debug("storage opened", "backend", BackendRedis, "addr", opts.RedisAddr)
		return NewRedisKV(client, opts.RedisPrefix), nil

	case BackendMemory:
		return NewMemoryKV(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}
