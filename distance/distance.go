package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the Euclidean (L2) distance between two points.
// Assumes a and b have the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared Euclidean distance between two points.
// Assumes a and b have the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)
	return floats.Dot(diff, diff)
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64
