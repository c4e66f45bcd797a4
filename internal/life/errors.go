package life

import (
	"errors"
	"fmt"
)

// Domain errors for the packages built around the grid. The grid itself has
// no failure modes.
var (
	// ErrUnknownPattern indicates a pattern name with no registered shape.
	ErrUnknownPattern = errors.New("life: unknown pattern")

	// ErrPatternBounds indicates a pattern larger than the grid it is placed on.
	ErrPatternBounds = errors.New("life: pattern does not fit grid")

	// ErrInvalidTick indicates a non-positive tick interval.
	ErrInvalidTick = errors.New("life: tick interval must be positive")

	// ErrInvalidGenerations indicates a non-positive generation count.
	ErrInvalidGenerations = errors.New("life: generations must be positive")
)

// GenerationError wraps an error with the generation it occurred at.
type GenerationError struct {
	Generation int
	Wrapped    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Wrapped)
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}
