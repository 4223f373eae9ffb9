package core

import "errors"

// Error kinds shared by every stage. Package-specific errors wrap one of
// these so callers can classify failures with errors.Is.
var (
	// ErrInvalidInput marks input that fails validation before any
	// computation starts: empty or mismatched series, non-monotonic time,
	// non-positive rates or frequencies.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericDegeneracy marks a locally recoverable numeric breakdown,
	// such as a non-finite effective stiffness at one oscillator period.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")

	// ErrComputation marks an internal inconsistency or backend failure.
	ErrComputation = errors.New("computation failure")
)
