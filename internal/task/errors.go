package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyText        = errors.New("text is empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrStoreUnavailable = errors.New("task store unavailable")
)
