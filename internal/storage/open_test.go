package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/database"
)

func TestOpen_Backends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		backend string
		want    any
	}{
		{"default is sqlite", "", &database.KVRepository{}},
		{"sqlite", BackendSQLite, &database.KVRepository{}},
		{"file", BackendFile, &FileKV{}},
		{"memory", BackendMemory, &MemoryKV{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			kv, err := Open(ctx, Options{Backend: tt.backend, DataDir: t.TempDir()}, nil)
			require.NoError(t, err)
			t.Cleanup(func() { _ = kv.Close() })
			assert.IsType(t, tt.want, kv)
		})
	}
}

func TestOpen_Redis(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)

	kv, err := Open(context.Background(), Options{Backend: BackendRedis, RedisAddr: mr.Addr(), RedisPrefix: "u:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	assert.IsType(t, &RedisKV{}, kv)
}

func TestOpen_RedisUnreachable(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Open(context.Background(), Options{Backend: BackendRedis, RedisAddr: addr}, nil)
	assert.Error(t, err)
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), Options{Backend: "postgres"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
