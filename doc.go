// Package kmeans partitions points in d-dimensional real space into k
// clusters with Lloyd's algorithm.
//
// Runs are deterministic: the first k points seed the centroids, ties go to
// the lowest centroid index, and a cluster that loses all members keeps its
// previous centroid. Iteration stops when every centroid moves less than
// 0.001 (Euclidean) between two rounds, or after the iteration cap.
//
// # Quick Start
//
//	points := []kmeans.Point{{1, 1}, {1.1, 1.1}, {9, 9}, {9.1, 9.1}}
//	res, err := kmeans.Fit(points, 2, kmeans.WithMaxIterations(10))
//	if err != nil { ... }
//	for _, c := range res.Centroids {
//	    fmt.Println(c) // [1.05 1.05], then [9.05 9.05]
//	}
//
// # Cluster Membership
//
// Clusters are not stored as separate objects. Result.Members derives the
// point indices of a cluster from the assignment vector on demand:
//
//	members := res.Members(0) // *roaring.Bitmap
//
// # Observability
//
//	logger := kmeans.NewTextLogger(slog.LevelDebug)
//	metrics := &kmeans.BasicMetricsCollector{}
//	res, _ := kmeans.Fit(points, 3,
//	    kmeans.WithLogger(logger),
//	    kmeans.WithMetricsCollector(metrics),
//	)
//
// Loading points from files or object storage lives in the source and
// dataset packages; rendering results lives in codec.
package kmeans
