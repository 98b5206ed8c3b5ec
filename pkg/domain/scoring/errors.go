package scoring

import "errors"

// Scoring errors. Both reject the request before any task is scored.
var (
	// ErrInvalidStrategy indicates an unrecognized strategy name.
	ErrInvalidStrategy = errors.New("invalid strategy")
	// ErrInvalidWeights indicates a custom weight profile that does not
	// sum to 100.
	ErrInvalidWeights = errors.New("invalid weights")
)
