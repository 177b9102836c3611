// Package kmeans implements the Lloyd's k-means iteration engine.
//
// The engine alternates two pure steps until the centroids stop moving or
// an iteration cap is reached:
//
//   - Assign: map every point to its nearest centroid (lowest index on ties)
//   - Update: replace every centroid by the mean of its members
//
// Centroids are seeded with the first k points. A cluster that loses all of
// its members keeps its previous centroid. Iteration state is threaded
// explicitly through State and Step; nothing is shared between runs.
//
// Callers are expected to validate their input first: 1 < k < n, and every
// point has the same dimensionality.
package kmeans
