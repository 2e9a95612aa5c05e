// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// RecordingPersister serves a fixed board and records every save
type RecordingPersister struct {
	mu      sync.Mutex
	Initial models.Board
	Saved   []models.Board
	LoadErr error
	SaveErr error
}

func (p *RecordingPersister) Load(ctx context.Context) (models.Board, error) {
	if p.LoadErr != nil {
		return models.Board{}, p.LoadErr
	}
	return p.Initial.Clone(), nil
}

func (p *RecordingPersister) Save(ctx context.Context, b models.Board) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SaveErr != nil {
		return p.SaveErr
	}
	p.Saved = append(p.Saved, b.Clone())
	return nil
}

// Saves returns how many boards were saved
func (p *RecordingPersister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Saved)
}

// SequentialIDs returns generators producing c1, c2, ... and t1, t2, ...
func SequentialIDs() board.Option {
	var cols, tasks int
	return board.WithIDGenerator(
		func() types.ColumnID { cols++; return types.ColumnID(fmt.Sprintf("c%d", cols)) },
		func() types.TaskID { tasks++; return types.TaskID(fmt.Sprintf("t%d", tasks)) },
	)
}

// NewStore loads b into a store with sequential ids
func NewStore(t *testing.T, b models.Board) (*board.Store, *RecordingPersister) {
	t.Helper()
	p := &RecordingPersister{Initial: b}
	store := board.Load(context.Background(), p, SequentialIDs())
	require.NotNil(t, store)
	return store, p
}

// BoardWith builds a board from column titles and, per column, task contents.
// Column i gets id "c<i+1>"; tasks get "t1", "t2", ... in the given order.
func BoardWith(columns []string, tasks map[int][]string) models.Board {
	var b models.Board
	n := 0
	for i, title := range columns {
		id := types.ColumnID(fmt.Sprintf("c%d", i+1))
		b.Columns = append(b.Columns, models.Column{ID: id, Title: title})
		for _, content := range tasks[i] {
			n++
			b.Tasks = append(b.Tasks, models.Task{ID: types.TaskID(fmt.Sprintf("t%d", n)), ColumnID: id, Content: content})
		}
	}
	return b
}
