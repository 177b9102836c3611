package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no points are given.
	ErrEmptyInput = errors.New("no points to cluster")

	// ErrInvalidK is returned when k is not in the open interval (1, n).
	ErrInvalidK = errors.New("k must satisfy 1 < k < number of points")

	// ErrInvalidMaxIterations is returned when the iteration cap is not in
	// the open interval (1, 1000).
	ErrInvalidMaxIterations = errors.New("max iterations must satisfy 1 < max < 1000")
)

// ErrDimensionMismatch indicates a point whose dimensionality differs from
// the first point.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("point %d: dimension mismatch: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// ErrInvalidDimension indicates points without coordinates.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrNonFinite indicates a NaN or infinite coordinate.
type ErrNonFinite struct {
	Index int
	Dim   int
}

func (e *ErrNonFinite) Error() string {
	return fmt.Sprintf("point %d: coordinate %d is not finite", e.Index, e.Dim)
}
