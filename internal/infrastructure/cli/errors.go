package cli

import (
	"errors"
	"fmt"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, task.ErrNoTasks):
		return NewCLIError("no tasks provided", "The input file must contain at least one task", err)
	case errors.Is(err, task.ErrMissingID):
		return NewCLIError("task is missing an id", "Every task needs a non-empty 'id' field", err)
	case errors.Is(err, task.ErrMissingTitle):
		return NewCLIError("task is missing a title", "Every task needs a non-empty 'title' field", err)
	case errors.Is(err, task.ErrDuplicateID):
		return NewCLIError("duplicate task id", "Task ids must be unique within one input file", err)
	case errors.Is(err, scoring.ErrInvalidStrategy):
		return NewCLIError("unknown strategy", "Run 'task-analyzer strategies' to list valid strategies", err)
	case errors.Is(err, scoring.ErrInvalidWeights):
		return NewCLIError("invalid custom weights", "Weights must be non-negative and sum to exactly 100", err)
	case errors.Is(err, application.ErrInvalidReferenceDate):
		return NewCLIError("invalid reference date", "Use YYYY-MM-DD, for example --date 2026-08-30", err)
	}

	return err
}
