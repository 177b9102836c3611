// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for point sets and a helper that renders
// points in the textual input format.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 3, -1, 1)
//	blobs := rng.GaussianBlobs(300, 2, 4, 0.5)
//
// # Input Rendering
//
//	input := testutil.FormatRecords(pts)
package testutil
