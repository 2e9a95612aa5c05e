package models

import "github.com/unitime/unitime/internal/types"

// Task represents a single task card on the board.
// The order of a column's tasks is their relative order in Board.Tasks.
type Task struct {
	ID       types.TaskID   `json:"id"`
	ColumnID types.ColumnID `json:"columnId"`
	Content  string         `json:"content"`
}
