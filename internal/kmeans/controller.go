package kmeans

import (
	"fmt"
	"math"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/model"
)

// Epsilon is the movement below which a centroid counts as settled.
// It is an absolute bound, independent of the scale of the data.
const Epsilon = 0.001

// Phase is the state of the iteration controller.
type Phase int

const (
	// Running means another assignment/update cycle may follow.
	Running Phase = iota
	// Converged means every centroid moved less than Epsilon in the last cycle.
	Converged
	// Exhausted means the iteration cap was reached before convergence.
	Exhausted
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// State is the controller state between two iterations.
// A State is never modified; Step returns a new one.
type State struct {
	Centroids []model.Point
	Previous  []model.Point
	Iteration int
	Phase     Phase
}

// Iteration describes one completed assignment/update cycle.
type Iteration struct {
	// Index is the 1-based number of the cycle.
	Index int
	// Assignment is the assignment vector computed in this cycle.
	Assignment []int
	// Centroids are the centroids produced by the update.
	Centroids []model.Point
	// Movement is the largest distance any centroid moved.
	Movement float64
	// Inertia is the within-cluster sum of squared distances of the
	// assignment to the new centroids.
	Inertia float64
	// Empty lists the clusters that had no members and kept their centroid.
	Empty []int
}

// Observer receives every completed iteration.
type Observer func(Iteration)

// Init seeds the controller with copies of the first k points.
// Previous is a sentinel that can never satisfy the convergence test.
func Init(points []model.Point, k int) State {
	centroids := make([]model.Point, k)
	previous := make([]model.Point, k)
	for j := 0; j < k; j++ {
		centroids[j] = points[j].Clone()
		previous[j] = model.Filled(points[j].Dim(), math.MaxFloat64)
	}

	return State{
		Centroids: centroids,
		Previous:  previous,
		Phase:     Running,
	}
}

// Movement returns, per centroid, the distance between current and previous.
func Movement(current, previous []model.Point) []float64 {
	moved := make([]float64, len(current))
	for j := range current {
		moved[j] = distance.Euclidean(current[j], previous[j])
	}
	return moved
}

// Settled reports whether every centroid moved strictly less than Epsilon.
func Settled(current, previous []model.Point) bool {
	for _, m := range Movement(current, previous) {
		if !(m < Epsilon) {
			return false
		}
	}
	return true
}

// Inertia returns the sum of squared distances from each point to the
// centroid it is assigned to.
func Inertia(points []model.Point, assignment []int, centroids []model.Point) float64 {
	var sum float64
	for i, p := range points {
		sum += distance.SquaredEuclidean(p, centroids[assignment[i]])
	}
	return sum
}

// Step advances s by one transition.
//
// A state that is not Running is returned unchanged. If the centroids have
// settled the result is Converged with the same centroids. If the cap has
// been reached the result is Exhausted. Otherwise one assignment/update
// cycle runs and the new state is returned together with its description.
func Step(points []model.Point, s State, maxIterations int) (State, *Iteration) {
	if s.Phase != Running {
		return s, nil
	}

	if Settled(s.Centroids, s.Previous) {
		s.Phase = Converged
		return s, nil
	}

	if s.Iteration >= maxIterations {
		s.Phase = Exhausted
		return s, nil
	}

	assignment := Assign(points, s.Centroids)
	next, empty := update(points, assignment, s.Centroids)

	it := &Iteration{
		Index:      s.Iteration + 1,
		Assignment: assignment,
		Centroids:  next,
		Inertia:    Inertia(points, assignment, next),
		Empty:      empty,
	}
	for _, m := range Movement(next, s.Centroids) {
		it.Movement = math.Max(it.Movement, m)
	}

	return State{
		Centroids: next,
		Previous:  s.Centroids,
		Iteration: s.Iteration + 1,
		Phase:     Running,
	}, it
}

// Run iterates from the first k points until the centroids converge or
// maxIterations cycles have run. observe may be nil.
func Run(points []model.Point, k, maxIterations int, observe Observer) State {
	s := Init(points, k)
	for s.Phase == Running {
		var it *Iteration
		s, it = Step(points, s, maxIterations)
		if it != nil && observe != nil {
			observe(*it)
		}
	}
	return s
}
