package models

import "github.com/unitime/unitime/internal/types"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Columns are ordered by their position in Board.Columns
type Column struct {
	ID    types.ColumnID `json:"id"`    // Unique identifier for the column
	Title string         `json:"title"` // Display name of the column
}
