package vectorize

import "fmt"

// InvalidInputError reports caller input rejected before any processing:
// non-positive grid dimensions or a scale factor below 1.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// InconsistencyError reports a failed internal invariant: an edge left
// untraced, a loop with no owning region, or a region whose boundary area
// disagrees with its pixel count. It always indicates a pipeline bug rather
// than bad input, and the conversion that raised it produced no output.
type InconsistencyError struct {
	Err error
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("internal consistency failure: %v", e.Err)
}

func (e *InconsistencyError) Unwrap() error { return e.Err }

func invalidInputf(format string, args ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
