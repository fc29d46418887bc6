package gonoise

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConversion is returned when a pipeline needs a conversion
	// between two value types and none is registered.
	ErrNoConversion = errors.New("no conversion registered")

	// ErrInvalidPeriod is returned when a builder is given a period that
	// is not positive.
	ErrInvalidPeriod = errors.New("period must be positive")

	// ErrInvalidOctaves is returned when a fractal builder is given an
	// octave count that is not positive.
	ErrInvalidOctaves = errors.New("octaves must be positive")

	// ErrInvalidWorkers is returned when a parallel sampler is given a
	// worker count that is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")
)

// ErrAmbiguousConversion indicates that two conversions were registered for
// the same pair of value types, so a pipeline between them could be built
// two different ways.
type ErrAmbiguousConversion struct {
	From  string
	To    string
	cause error
}

func (e *ErrAmbiguousConversion) Error() string {
	return fmt.Sprintf("ambiguous conversion: %s to %s registered twice", e.From, e.To)
}

func (e *ErrAmbiguousConversion) Unwrap() error { return e.cause }

// ErrInvalidNudge indicates a cellular nudge range outside [0, 1].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidNudge struct {
	Range float32
	cause error
}

func (e *ErrInvalidNudge) Error() string {
	return fmt.Sprintf("invalid nudge range: %v (want [0, 1])", e.Range)
}

func (e *ErrInvalidNudge) Unwrap() error { return e.cause }
