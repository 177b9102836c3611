package model

import (
	"fmt"
	"slices"
)

// Point is an ordered sequence of real coordinates.
type Point []float64

// Dim returns the dimensionality of the point.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns a copy of p that shares no memory with it.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return slices.Equal(p, q)
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("Point%v", []float64(p))
}

// Filled returns a point of dimension dim with every coordinate set to v.
func Filled(dim int, v float64) Point {
	p := make(Point, dim)
	for i := range p {
		p[i] = v
	}
	return p
}

// ClonePoints deep-copies a list of points.
func ClonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	return out
}
