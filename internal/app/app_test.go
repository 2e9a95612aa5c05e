package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/config"
	"github.com/unitime/unitime/internal/drag"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/storage"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendFile
	cfg.Storage.DataDir = t.TempDir()
	return cfg
}

func titles(cols []models.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Title
	}
	return out
}

func TestNew_SeedsEmptyBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := New(ctx, fileConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	assert.Equal(t, models.DefaultSeedColumns, titles(a.Board.Columns()))
	assert.Empty(t, a.Board.Tasks())
}

func TestNew_SeedingDisabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := fileConfig(t)
	off := false
	cfg.Board.SeedColumns = &off

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	assert.Empty(t, a.Board.Columns())
}

func TestNew_CustomSeedTitlesAndDefaultTitle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := fileConfig(t)
	cfg.Board.SeedTitles = []string{"Backlog", "Doing"}
	cfg.Board.DefaultColumnTitle = "Untitled"

	a, err := New(ctx, cfg, WithKV(storage.NewMemoryKV()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	assert.Equal(t, []string{"Backlog", "Doing"}, titles(a.Board.Columns()))
	assert.Equal(t, "Untitled", a.Board.CreateColumn().Title)
}

func TestClose_FlushesDebouncedSaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := fileConfig(t)
	hour := time.Hour
	cfg.Storage.Debounce = &hour

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	col := a.Board.Columns()[0]
	task, err := a.Board.CreateTask(col.ID)
	require.NoError(t, err)
	require.NoError(t, a.Close(ctx))

	reopened, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close(ctx) })

	got, ok := reopened.Board.Task(task.ID)
	require.True(t, ok, "task created before close must survive a restart")
	assert.Equal(t, col.ID, got.ColumnID)
	assert.Equal(t, a.Board.Snapshot(), reopened.Board.Snapshot())
}

func TestReset_ClearsStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	a, err := New(ctx, nil, WithKV(kv), WithWriteThrough())
	require.NoError(t, err)
	require.NotEmpty(t, kv.Keys())

	require.NoError(t, a.Reset(ctx))

	assert.True(t, a.Board.Snapshot().IsEmpty())
	assert.Empty(t, kv.Keys())
}

func TestNew_UnknownBackend(t *testing.T) {
	t.Parallel()
	cfg := fileConfig(t)
	cfg.Storage.Backend = "postgres"

	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}

func TestClose_RollsBackDragInProgress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := New(ctx, nil, WithKV(storage.NewMemoryKV()))
	require.NoError(t, err)
	cols := a.Board.Columns()
	task, err := a.Board.CreateTask(cols[0].ID)
	require.NoError(t, err)
	before := a.Board.Snapshot()

	require.NoError(t, a.Drag.Start(drag.TaskSubject(task.ID)))
	a.Drag.Over(drag.OverColumn(cols[1].ID))
	require.NoError(t, a.Close(ctx))

	assert.Equal(t, before, a.Board.Snapshot())
	assert.Equal(t, drag.Idle, a.Drag.State())
}

// The board and a CLI command open the same data directory; each keeps
// what the other saved.
func TestNew_SharedDataDirKeepsBothWriters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := fileConfig(t)

	boardApp, err := New(ctx, cfg)
	require.NoError(t, err)
	cliApp, err := New(ctx, cfg, WithWriteThrough())
	require.NoError(t, err)

	task, err := cliApp.Board.CreateTask(cliApp.Board.Columns()[0].ID)
	require.NoError(t, err)
	require.NoError(t, cliApp.Close(ctx))

	col := boardApp.Board.CreateColumn()
	require.NoError(t, boardApp.Close(ctx))

	reopened, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close(ctx) })

	require.Len(t, reopened.Board.Tasks(), 1)
	_, ok := reopened.Board.Task(task.ID)
	assert.True(t, ok, "task saved by the other process must survive")
	_, ok = reopened.Board.Column(col.ID)
	assert.True(t, ok, "column created here must survive")
	assert.Equal(t, reopened.Board.Snapshot(), boardApp.Board.Snapshot(),
		"the closing app adopts the merged board")
}

func TestRefresh_AdoptsOutsideChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := fileConfig(t)

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	changed, err := a.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	other, err := New(ctx, cfg, WithWriteThrough())
	require.NoError(t, err)
	col := other.Board.Columns()[1]
	task, err := other.Board.CreateTask(col.ID)
	require.NoError(t, err)
	require.NoError(t, other.Close(ctx))

	changed, err = a.Refresh(ctx)
	require.NoError(t, err)
	require.True(t, changed)

	got, ok := a.Board.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, col.ID, got.ColumnID)
}

func TestRefresh_KeepsPendingLocalChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := fileConfig(t)
	hour := time.Hour
	cfg.Storage.Debounce = &hour

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	other, err := New(ctx, cfg, WithWriteThrough())
	require.NoError(t, err)

	require.NoError(t, a.Board.RenameColumn(a.Board.Columns()[0].ID, "Backlog"))
	outside := other.Board.CreateColumn()
	require.NoError(t, other.Close(ctx))

	_, err = a.Refresh(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Close(ctx))

	reopened, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close(ctx) })

	cols := reopened.Board.Columns()
	assert.Equal(t, "Backlog", cols[0].Title)
	_, ok := reopened.Board.Column(outside.ID)
	assert.True(t, ok)
}
