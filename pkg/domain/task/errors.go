package task

import "errors"

// Task validation errors. These reject the whole request before scoring.
var (
	// ErrNoTasks indicates the request contained no tasks.
	ErrNoTasks = errors.New("no tasks provided")
	// ErrMissingID indicates a task was submitted without an identifier.
	ErrMissingID = errors.New("task id is required")
	// ErrMissingTitle indicates a task was submitted without a title.
	ErrMissingTitle = errors.New("task title is required")
	// ErrDuplicateID indicates two tasks in one request share an identifier.
	ErrDuplicateID = errors.New("duplicate task id")
)
