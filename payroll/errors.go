package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidCount is returned when asked to generate zero or fewer workers.
	ErrInvalidCount = errors.New("worker count must be positive")

	// ErrInvalidSalaryRange is returned when the salary range is empty or inverted.
	ErrInvalidSalaryRange = errors.New("invalid salary range")

	// ErrRandomSource is returned when the random source produces values
	// outside the contract of RandomSource.
	ErrRandomSource = errors.New("random source failure")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
