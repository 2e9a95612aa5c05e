package board

import "errors"

// Board errors. Each one means the call was ignored and nothing changed.
var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)
