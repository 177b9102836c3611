package kmeans

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans/model"
	"github.com/hupe1980/kmeans/testutil"
)

func TestInit(t *testing.T) {
	points := []model.Point{{1, 2}, {3, 4}, {5, 6}}
	s := Init(points, 2)

	assert.Equal(t, Running, s.Phase)
	assert.Equal(t, 0, s.Iteration)
	assert.Equal(t, []model.Point{{1, 2}, {3, 4}}, s.Centroids)
	require.Len(t, s.Previous, 2)
	assert.Equal(t, model.Point{math.MaxFloat64, math.MaxFloat64}, s.Previous[0])

	// Seeds are copies.
	s.Centroids[0][0] = 42
	assert.Equal(t, 1.0, points[0][0])
}

func TestSettled(t *testing.T) {
	prev := []model.Point{{0, 0}, {1, 1}}

	tests := []struct {
		name string
		cur  []model.Point
		want bool
	}{
		{"unchanged", []model.Point{{0, 0}, {1, 1}}, true},
		{"below threshold", []model.Point{{0, 0.0009}, {1, 1}}, true},
		{"threshold is strict", []model.Point{{0, 0.001}, {1, 1}}, false},
		{"every centroid must settle", []model.Point{{0, 0}, {1, 1.5}}, false},
		// Each coordinate moves less than 0.001 but the Euclidean distance is ~0.00113.
		{"distance spans dimensions", []model.Point{{0.0008, 0.0008}, {1, 1}}, false},
		{"distance within threshold", []model.Point{{0.0007, 0.0007}, {1, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Settled(tt.cur, prev))
		})
	}

	s := Init([]model.Point{{0, 0}, {0, 0}, {0, 0}}, 2)
	assert.False(t, Settled(s.Centroids, s.Previous), "sentinel never converges")
}

func TestRun_ScenarioA(t *testing.T) {
	points := []model.Point{{1, 1}, {1.1, 1.1}, {9, 9}, {9.1, 9.1}}

	s := Run(points, 2, 10, nil)

	assert.Equal(t, Converged, s.Phase)
	assert.Equal(t, 3, s.Iteration)
	require.Len(t, s.Centroids, 2)
	assert.InDelta(t, 1.05, s.Centroids[0][0], 1e-9)
	assert.InDelta(t, 1.05, s.Centroids[0][1], 1e-9)
	assert.InDelta(t, 9.05, s.Centroids[1][0], 1e-9)
	assert.InDelta(t, 9.05, s.Centroids[1][1], 1e-9)
}

func TestRun_ScenarioB_EmptyClusters(t *testing.T) {
	// k == n-1 with duplicated seeds: clusters 1 and 3 never receive a point.
	points := []model.Point{{0}, {0}, {5}, {5}, {5}}

	var empties [][]int
	s := Run(points, 4, 10, func(it Iteration) {
		empties = append(empties, it.Empty)
	})

	assert.Equal(t, Converged, s.Phase)
	require.NotEmpty(t, empties)
	assert.Equal(t, []int{1, 3}, empties[0])
	assert.Equal(t, []model.Point{{0}, {0}, {5}, {5}}, s.Centroids)
	for _, c := range s.Centroids {
		assert.False(t, math.IsNaN(c[0]))
	}
}

func TestRun_ScenarioB_SinglePointClusters(t *testing.T) {
	points := []model.Point{{0}, {1}, {2}, {10}}

	s := Run(points, 3, 100, nil)

	assert.Equal(t, Converged, s.Phase)
	assert.Equal(t, []model.Point{{0}, {1.5}, {10}}, s.Centroids)
}

func TestRun_ScenarioC_IdenticalPoints(t *testing.T) {
	points := []model.Point{{2, 2}, {2, 2}, {2, 2}, {2, 2}}

	s := Run(points, 2, 10, nil)

	assert.Equal(t, Converged, s.Phase)
	assert.Equal(t, []model.Point{{2, 2}, {2, 2}}, s.Centroids)
}

func TestRun_Exhausted(t *testing.T) {
	points := []model.Point{{1, 1}, {1.1, 1.1}, {9, 9}, {9.1, 9.1}}

	var cycles int
	s := Run(points, 2, 1, func(Iteration) { cycles++ })

	assert.Equal(t, Exhausted, s.Phase)
	assert.Equal(t, 1, s.Iteration)
	assert.Equal(t, 1, cycles)
	assert.Equal(t, model.Point{1, 1}, s.Centroids[0])
	assert.InDelta(t, (1.1+9+9.1)/3, s.Centroids[1][0], 1e-12)
}

func TestStep_TerminalStateIsUnchanged(t *testing.T) {
	points := []model.Point{{1}, {2}, {3}}
	s := State{Centroids: []model.Point{{1}, {3}}, Phase: Converged, Iteration: 4}

	next, it := Step(points, s, 10)

	assert.Nil(t, it)
	assert.Equal(t, s, next)
}

func TestStep_ThreadsPrevious(t *testing.T) {
	points := []model.Point{{0}, {1}, {10}}
	s0 := Init(points, 2)

	s1, it := Step(points, s0, 10)
	require.NotNil(t, it)

	assert.Equal(t, 1, it.Index)
	assert.Equal(t, s0.Centroids, s1.Previous)
	assert.Equal(t, it.Centroids, s1.Centroids)
	assert.Equal(t, []int{0, 1, 1}, it.Assignment)
	assert.Equal(t, model.Point{0}, s0.Centroids[0], "input state is not modified")
	assert.Equal(t, model.Point{1}, s0.Centroids[1], "input state is not modified")
}

func TestRun_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(7)
	points := rng.GaussianBlobs(300, 4, 5, 3.0)

	a := Run(points, 5, 400, nil)
	b := Run(model.ClonePoints(points), 5, 400, nil)

	assert.Equal(t, a.Phase, b.Phase)
	assert.Equal(t, a.Iteration, b.Iteration)
	for j := range a.Centroids {
		for d := range a.Centroids[j] {
			assert.Equal(t, math.Float64bits(a.Centroids[j][d]), math.Float64bits(b.Centroids[j][d]))
		}
	}
}

func TestRun_Invariants(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, tc := range []struct {
		n, dim, k, maxIter int
	}{
		{50, 1, 2, 10},
		{120, 3, 7, 400},
		{64, 8, 63, 5},
		{200, 2, 10, 2},
	} {
		points := rng.UniformPoints(tc.n, tc.dim, -100, 100)

		var inertias []float64
		s := Run(points, tc.k, tc.maxIter, func(it Iteration) {
			inertias = append(inertias, it.Inertia)
		})

		assert.NotEqual(t, Running, s.Phase)
		assert.LessOrEqual(t, s.Iteration, tc.maxIter)
		assert.Len(t, inertias, s.Iteration)
		require.Len(t, s.Centroids, tc.k)
		for _, c := range s.Centroids {
			assert.Len(t, c, tc.dim)
		}

		for i := 1; i < len(inertias); i++ {
			assert.LessOrEqual(t, inertias[i], inertias[i-1]*(1+1e-12)+1e-9,
				"inertia increased at iteration %d", i+1)
		}
	}
}
