package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrUnknownOutcome is returned when recording an outcome outside the known set.
	ErrUnknownOutcome = errors.New("unknown analysis outcome")
)
