package pipeline

import "errors"

var (
	// ErrNoCategories is returned when discovery finds no asset categories.
	ErrNoCategories = errors.New("no asset categories found")
)
