package drag

import "errors"

// Drag errors returned by Start. The gesture in progress, if any, is unchanged.
var (
	ErrAlreadyDragging = errors.New("a drag is already in progress")
	ErrUnknownSubject  = errors.New("drag subject does not exist")
)
