package leave

import "errors"

// Leave domain errors
var (
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrAlreadyProcessed    = errors.New("leave application has already been processed")
	ErrOverlappingLeave    = errors.New("an approved or pending leave already covers part of this range")
)
