package types

import "github.com/google/uuid"

// ID types give board identifiers semantic meaning. Identifiers are opaque
// strings: new ones are random UUIDs, while boards saved by older clients
// may carry numeric strings, which load unchanged.

// ColumnID identifies a unique column on the board
type ColumnID string

// TaskID identifies a unique task on the board
type TaskID string

// NewColumnID returns a fresh random column identifier
func NewColumnID() ColumnID {
	return ColumnID(uuid.NewString())
}

// NewTaskID returns a fresh random task identifier
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

func (id ColumnID) String() string {
	return string(id)
}

func (id TaskID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset
func (id ColumnID) IsZero() bool {
	return id == ""
}

// IsZero reports whether the id is unset
func (id TaskID) IsZero() bool {
	return id == ""
}
