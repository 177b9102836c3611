package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kmeans/model"
)

// Group builds the membership of each of the k clusters from an assignment
// vector. groups[j] holds the indices of the points assigned to cluster j.
func Group(assignment []int, k int) []*roaring.Bitmap {
	groups := make([]*roaring.Bitmap, k)
	for j := range groups {
		groups[j] = roaring.New()
	}
	for i, j := range assignment {
		groups[j].Add(uint32(i))
	}
	return groups
}

// Mean returns the coordinate-wise arithmetic mean of the points in members.
// Members are summed in ascending index order. members must not be empty.
func Mean(points []model.Point, members *roaring.Bitmap, dim int) model.Point {
	sum := make(model.Point, dim)

	it := members.Iterator()
	for it.HasNext() {
		floats.Add(sum, points[it.Next()])
	}

	count := float64(members.GetCardinality())
	for d := range sum {
		sum[d] /= count
	}
	return sum
}

// Update computes the next centroids from the current assignment.
//
// previous supplies both k and d. A cluster with no members keeps an exact
// copy of its previous centroid.
func Update(points []model.Point, assignment []int, previous []model.Point) []model.Point {
	next, _ := update(points, assignment, previous)
	return next
}

// update is Update that also reports which clusters were empty.
func update(points []model.Point, assignment []int, previous []model.Point) ([]model.Point, []int) {
	k := len(previous)
	groups := Group(assignment, k)

	var empty []int
	next := make([]model.Point, k)
	for j, members := range groups {
		if members.IsEmpty() {
			next[j] = previous[j].Clone()
			empty = append(empty, j)
			continue
		}
		next[j] = Mean(points, members, previous[j].Dim())
	}

	return next, empty
}
