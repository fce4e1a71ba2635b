package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTagNotFound  = errors.New("tag not found")
)

// ValidationError rejects an input before any state is touched. Message is
// shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures. Compare with errors.Is.
var (
	ErrDateInPast       = &ValidationError{Message: "You cannot create a task in the past."}
	ErrEndBeforeStart   = &ValidationError{Message: "The end date/time cannot be before the start date/time."}
	ErrEmptyTitle       = &ValidationError{Message: "Title is required."}
	ErrInvalidDate      = &ValidationError{Message: "Dates must use the YYYY-MM-DD format."}
	ErrInvalidTime      = &ValidationError{Message: "Times must use the HH:MM format."}
	ErrInvalidColor     = &ValidationError{Message: "Unknown color."}
	ErrInvalidStatus    = &ValidationError{Message: "Unknown status filter."}
	ErrInvalidCompleted = &ValidationError{Message: "Unknown completion filter."}
	ErrEmptyTag         = &ValidationError{Message: "Tag cannot be empty."}
	ErrInvalidDuration  = &ValidationError{Message: "Time spent cannot be negative."}
)
