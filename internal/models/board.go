package models

import (
	"slices"

	"github.com/unitime/unitime/internal/types"
)

// Board is a value snapshot of the whole board: the ordered columns and the
// global task sequence. Snapshots handed out by the store are copies.
type Board struct {
	Columns []Column
	Tasks   []Task
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := Board{
		Columns: make([]Column, len(b.Columns)),
		Tasks:   make([]Task, len(b.Tasks)),
	}
	copy(out.Columns, b.Columns)
	copy(out.Tasks, b.Tasks)
	return out
}

// TasksIn returns the tasks of one column in display order
func (b Board) TasksIn(columnID types.ColumnID) []Task {
	var out []Task
	for _, t := range b.Tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

// IsEmpty reports whether the board has neither columns nor tasks
func (b Board) IsEmpty() bool {
	return len(b.Columns) == 0 && len(b.Tasks) == 0
}

// Equal reports whether both boards hold the same records in the same
// order. Nil and empty collections are equal.
func (b Board) Equal(other Board) bool {
	return slices.Equal(b.Columns, other.Columns) && slices.Equal(b.Tasks, other.Tasks)
}
