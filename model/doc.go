// Package model defines the value types shared by the clustering engine and
// the input and output layers.
//
// # Data Types
//
//   - Point: an ordered sequence of d real coordinates
//
// Points are never mutated once created. Centroids are Points too; the
// engine replaces them wholesale at each update and never writes into a
// slice it has already handed out.
package model
