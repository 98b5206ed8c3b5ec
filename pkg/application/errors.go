package application

import "errors"

// ErrInvalidReferenceDate indicates a reference_date that is not a valid
// YYYY-MM-DD calendar date.
var ErrInvalidReferenceDate = errors.New("invalid reference date")
