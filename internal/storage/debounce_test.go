package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/models"
)

// countingPersister records every board written to it
type countingPersister struct {
	mu    sync.Mutex
	saved []models.Board
	err   error
}

func (c *countingPersister) Load(ctx context.Context) (models.Board, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.saved) == 0 {
		return models.Board{}, nil
	}
	return c.saved[len(c.saved)-1], nil
}

func (c *countingPersister) Save(ctx context.Context, b models.Board) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.saved = append(c.saved, b)
	return nil
}

func (c *countingPersister) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.saved)
}

func boardWithColumns(n int) models.Board {
	b := models.Board{}
	for i := 0; i < n; i++ {
		b.Columns = append(b.Columns, models.Column{ID: "c", Title: "x"})
	}
	return b
}

func TestDebounced_CoalescesBurst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	next := &countingPersister{}
	d := NewDebounced(next, time.Hour, nil)

	for i := 1; i <= 5; i++ {
		require.NoError(t, d.Save(ctx, boardWithColumns(i)))
	}
	assert.Zero(t, next.count(), "nothing is written before the quiet period")
	assert.True(t, d.Pending())

	require.NoError(t, d.Flush(ctx))

	require.Equal(t, 1, next.count())
	got, _ := next.Load(ctx)
	assert.Len(t, got.Columns, 5, "only the latest board is written")
	assert.False(t, d.Pending())
}

func TestDebounced_TimerWrites(t *testing.T) {
	t.Parallel()
	next := &countingPersister{}
	d := NewDebounced(next, 10*time.Millisecond, nil)

	require.NoError(t, d.Save(context.Background(), boardWithColumns(1)))

	require.Eventually(t, func() bool { return next.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDebounced_ZeroDelayWritesThrough(t *testing.T) {
	t.Parallel()
	next := &countingPersister{}
	d := NewDebounced(next, 0, nil)

	require.NoError(t, d.Save(context.Background(), boardWithColumns(1)))
	require.NoError(t, d.Save(context.Background(), boardWithColumns(2)))

	assert.Equal(t, 2, next.count())
}

func TestDebounced_WriteThroughReturnsError(t *testing.T) {
	t.Parallel()
	next := &countingPersister{err: errors.New("disk full")}
	d := NewDebounced(next, 0, nil)

	assert.Error(t, d.Save(context.Background(), boardWithColumns(1)))
}

func TestDebounced_CloseFlushesAndWritesThroughAfter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	next := &countingPersister{}
	d := NewDebounced(next, time.Hour, nil)

	require.NoError(t, d.Save(ctx, boardWithColumns(3)))
	require.NoError(t, d.Close(ctx))
	assert.Equal(t, 1, next.count())

	require.NoError(t, d.Save(ctx, boardWithColumns(4)))
	assert.Equal(t, 2, next.count())
}

func TestDebounced_LoadSeesPendingBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	next := &countingPersister{}
	d := NewDebounced(next, time.Hour, nil)

	require.NoError(t, d.Save(ctx, boardWithColumns(2)))
	got, err := d.Load(ctx)

	require.NoError(t, err)
	assert.Len(t, got.Columns, 2)
}

func TestDebounced_FlushWithNothingPending(t *testing.T) {
	t.Parallel()
	next := &countingPersister{}
	d := NewDebounced(next, time.Hour, nil)

	require.NoError(t, d.Flush(context.Background()))
	assert.Zero(t, next.count())
}

// reentrantPersister calls back into the debouncer from inside Save, the
// way a merge handler re-saves through the store
type reentrantPersister struct {
	countingPersister
	d    *Debounced
	once sync.Once
}

func (r *reentrantPersister) Save(ctx context.Context, b models.Board) error {
	if err := r.countingPersister.Save(ctx, b); err != nil {
		return err
	}
	r.once.Do(func() {
		_ = r.d.Save(ctx, boardWithColumns(5))
	})
	return nil
}

func TestDebounced_SaveDuringWriteIsQueued(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	next := &reentrantPersister{}
	d := NewDebounced(next, time.Hour, nil)
	next.d = d

	require.NoError(t, d.Save(ctx, boardWithColumns(1)))
	require.NoError(t, d.Close(ctx))

	require.Equal(t, 2, next.count())
	assert.Len(t, next.saved[1].Columns, 5, "the queued board lands after the one being written")
	assert.False(t, d.Pending())
}
