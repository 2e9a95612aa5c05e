package board

import (
	"context"

	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// Load builds a store from whatever p has saved. A failed load is logged
// and yields an empty board; saved data is never a reason not to start.
func Load(ctx context.Context, p Persister, opts ...Option) *Store {
	s := New(p, opts...)
	if p == nil {
		return s
	}

	saved, err := p.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load board, starting empty", "error", err)
		return s
	}

	clean, dropped := Sanitize(saved)
	if dropped > 0 {
		s.logger.Warn("dropped invalid records from saved board", "dropped", dropped)
	}

	s.mu.Lock()
	s.columns = clean.Columns
	s.tasks = clean.Tasks
	s.markIssuedLocked()
	s.mu.Unlock()

	s.logger.Debug("board loaded", "columns", len(clean.Columns), "tasks", len(clean.Tasks))
	return s
}

// Sanitize enforces the board invariants on data from outside: empty or
// duplicate ids are dropped (first occurrence wins) and so are tasks whose
// column does not exist. It returns the cleaned board and how many records
// were dropped.
func Sanitize(b models.Board) (models.Board, int) {
	out := models.Board{
		Columns: make([]models.Column, 0, len(b.Columns)),
		Tasks:   make([]models.Task, 0, len(b.Tasks)),
	}
	dropped := 0

	columns := make(map[types.ColumnID]struct{}, len(b.Columns))
	for _, c := range b.Columns {
		if _, dup := columns[c.ID]; dup || c.ID.IsZero() {
			dropped++
			continue
		}
		columns[c.ID] = struct{}{}
		out.Columns = append(out.Columns, c)
	}

	tasks := make(map[types.TaskID]struct{}, len(b.Tasks))
	for _, t := range b.Tasks {
		_, dup := tasks[t.ID]
		_, owned := columns[t.ColumnID]
		if dup || !owned || t.ID.IsZero() {
			dropped++
			continue
		}
		tasks[t.ID] = struct{}{}
		out.Tasks = append(out.Tasks, t)
	}

	return out, dropped
}
