// Package distance provides point distance calculations.
//
// # Supported Functions
//
//   - Euclidean: sqrt(sum((a_i - b_i)^2)), used for assignment and convergence
//   - SquaredEuclidean: sum((a_i - b_i)^2), used for inertia
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sse := distance.SquaredEuclidean(a, b)
package distance
