package kmeans

import (
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/model"
)

// Nearest returns the index of the centroid closest to p.
// The first minimum wins, so equidistant centroids resolve to the lowest index.
func Nearest(p model.Point, centroids []model.Point) int {
	best := 0
	minDist := distance.Euclidean(p, centroids[0])

	for j := 1; j < len(centroids); j++ {
		d := distance.Euclidean(p, centroids[j])
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

// Assign computes the assignment vector: element i is the index of the
// centroid nearest to points[i].
func Assign(points, centroids []model.Point) []int {
	assignment := make([]int, len(points))
	for i, p := range points {
		assignment[i] = Nearest(p, centroids)
	}
	return assignment
}
