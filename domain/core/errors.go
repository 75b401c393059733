package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors (fatal to a battery call)
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptySample   = fmt.Errorf("%w: sample is empty", ErrInvalidInput)
	ErrRangeTooSmall = fmt.Errorf("%w: range upper bound must be >= 1", ErrInvalidInput)
	ErrOutOfRange    = fmt.Errorf("%w: sample value out of range", ErrInvalidInput)

	// Generation errors
	ErrUnknownSource = errors.New("unknown sequence source")

	// Export errors
	ErrRangeTooWide = errors.New("range upper bound too large for byte export")
)

// Error constructors with context
func NewOutOfRangeError(index, value, rangeN int) error {
	return fmt.Errorf("%w: sample[%d] = %d, want [0, %d)", ErrOutOfRange, index, value, rangeN)
}

func NewUnknownSourceError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
