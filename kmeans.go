package kmeans

import (
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	core "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/model"
)

// Point is an ordered sequence of real coordinates.
type Point = model.Point

// Epsilon is the per-centroid movement below which a run has converged.
const Epsilon = core.Epsilon

// State is the terminal state of a run.
type State int

const (
	// StateConverged means every centroid moved less than Epsilon.
	StateConverged State = iota + 1
	// StateExhausted means the iteration cap was reached first.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of a Fit call.
type Result struct {
	// Centroids holds k centroids in index order.
	Centroids []Point
	// Assignments maps every input point to the index of its nearest
	// final centroid.
	Assignments []int
	// Iterations is the number of assignment/update cycles that ran.
	Iterations int
	// State tells whether the run converged or hit the iteration cap.
	State State
	// Inertia is the sum of squared distances from each point to its
	// assigned final centroid.
	Inertia float64
}

// K returns the number of clusters.
func (r *Result) K() int {
	return len(r.Centroids)
}

// Dimension returns the dimensionality of the centroids.
func (r *Result) Dimension() int {
	if len(r.Centroids) == 0 {
		return 0
	}
	return r.Centroids[0].Dim()
}

// Members returns the indices of the input points assigned to cluster j.
// The bitmap is built on demand; mutating it does not affect the Result.
func (r *Result) Members(j int) *roaring.Bitmap {
	bm := roaring.New()
	for i, a := range r.Assignments {
		if a == j {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// Sizes returns the number of points assigned to each cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, a := range r.Assignments {
		sizes[a]++
	}
	return sizes
}

// Predict returns the index of the centroid nearest to p.
// p must have the same dimensionality as the centroids.
func (r *Result) Predict(p Point) (int, error) {
	if p.Dim() != r.Dimension() {
		return -1, &ErrDimensionMismatch{Index: 0, Expected: r.Dimension(), Actual: p.Dim()}
	}
	return core.Nearest(p, r.Centroids), nil
}

// Fit clusters points into k clusters.
//
// The points must be non-empty, share one dimensionality of at least 1,
// and contain only finite coordinates. k must satisfy 1 < k < len(points).
// The points are not modified.
func Fit(points []Point, k int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	start := time.Now()

	if err := validate(points, k, o.maxIterations); err != nil {
		o.logger.LogRun(0, 0, time.Since(start), err)
		o.metricsCollector.RecordRun(0, 0, time.Since(start), err)
		return nil, err
	}

	logger := o.logger.WithK(k).WithDimension(points[0].Dim()).WithCount(len(points))

	final := core.Run(points, k, o.maxIterations, func(it core.Iteration) {
		logger.LogIteration(it.Index, it.Movement, it.Inertia, it.Empty)
		o.metricsCollector.RecordIteration(it.Index, it.Movement, it.Inertia, len(it.Empty))
	})

	state := StateExhausted
	if final.Phase == core.Converged {
		state = StateConverged
	}

	assignments := core.Assign(points, final.Centroids)
	res := &Result{
		Centroids:   final.Centroids,
		Assignments: assignments,
		Iterations:  final.Iteration,
		State:       state,
		Inertia:     core.Inertia(points, assignments, final.Centroids),
	}

	duration := time.Since(start)
	logger.LogRun(res.Iterations, res.State, duration, nil)
	o.metricsCollector.RecordRun(res.Iterations, res.State, duration, nil)

	return res, nil
}

func validate(points []Point, k, maxIterations int) error {
	if len(points) == 0 {
		return ErrEmptyInput
	}
	if !(1 < maxIterations && maxIterations < 1000) {
		return ErrInvalidMaxIterations
	}
	if !(1 < k && k < len(points)) {
		return ErrInvalidK
	}

	dim := points[0].Dim()
	if dim < 1 {
		return &ErrInvalidDimension{Dimension: dim}
	}
	for i, p := range points {
		if p.Dim() != dim {
			return &ErrDimensionMismatch{Index: i, Expected: dim, Actual: p.Dim()}
		}
		for d, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &ErrNonFinite{Index: i, Dim: d}
			}
		}
	}

	return nil
}
