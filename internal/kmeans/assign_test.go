package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/kmeans/model"
)

func TestNearest(t *testing.T) {
	centroids := []model.Point{
		{0, 0},   // 0
		{10, 10}, // 1
		{20, 20}, // 2
	}

	assert.Equal(t, 0, Nearest(model.Point{1, 1}, centroids))
	assert.Equal(t, 1, Nearest(model.Point{11, 9}, centroids))
	assert.Equal(t, 2, Nearest(model.Point{100, 100}, centroids))
}

func TestNearest_TieBreaksToLowestIndex(t *testing.T) {
	centroids := []model.Point{
		{2, 0},
		{-2, 0},
		{0, 2},
	}

	// (0,0) is at distance 2 from every centroid.
	assert.Equal(t, 0, Nearest(model.Point{0, 0}, centroids))

	// Duplicate centroids always resolve to the first copy.
	dup := []model.Point{{5, 5}, {1, 1}, {1, 1}}
	assert.Equal(t, 1, Nearest(model.Point{1, 1}, dup))
}

func TestAssign(t *testing.T) {
	points := []model.Point{{0, 0}, {0, 1}, {10, 10}, {11, 10}}
	centroids := []model.Point{{0, 0}, {10, 10}}

	assert.Equal(t, []int{0, 0, 1, 1}, Assign(points, centroids))
}

func TestAssign_DoesNotMutateInputs(t *testing.T) {
	points := []model.Point{{1}, {2}, {3}}
	centroids := []model.Point{{1}, {3}}
	pointsCopy := model.ClonePoints(points)
	centroidsCopy := model.ClonePoints(centroids)

	_ = Assign(points, centroids)

	assert.Equal(t, pointsCopy, points)
	assert.Equal(t, centroidsCopy, centroids)
}
