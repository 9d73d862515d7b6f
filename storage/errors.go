package storage

import "errors"

var (
	// ErrInvalidResults indicates the persisted results could not be parsed.
	ErrInvalidResults = errors.New("results file is not valid JSON")
)
