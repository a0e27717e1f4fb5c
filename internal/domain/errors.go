package domain

import "errors"

// Domain errors.
var (
	// ErrValidation marks recoverable input errors (bad title, date,
	// priority, status or sort key). Callers can correct and retry.
	ErrValidation = errors.New("validation error")

	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrParse and ErrSchema are fatal when raised from an explicit load;
	// the manager swallows them only during construction from a file path.
	ErrParse  = errors.New("malformed task file")
	ErrSchema = errors.New("invalid task file: missing 'tasks' key")
)
