package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyField is returned for a record containing an empty field (e.g. "1,,2").
	ErrEmptyField = errors.New("empty field")

	// ErrNonFinite is returned for NaN or infinite values.
	ErrNonFinite = errors.New("value is not finite")
)

// ParseError reports a record that could not be parsed.
type ParseError struct {
	// Line is the 1-based line number of the record.
	Line  int
	Field int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, field %d: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DimensionError reports a record whose field count differs from the first record.
type DimensionError struct {
	Line     int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("line %d: dimension mismatch: expected %d, got %d", e.Line, e.Expected, e.Actual)
}
