package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/kmeans/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates points with coordinates in range [minVal, maxVal).
func (r *RNG) UniformPoints(num, dim int, minVal, maxVal float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([]model.Point, num)
	for i := range points {
		p := make(model.Point, dim)
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// GaussianBlobs generates points scattered around `centers` random centers
// in [-100, 100)^dim with Gaussian noise of the given spread.
// Point i belongs to blob i % centers.
func (r *RNG) GaussianBlobs(num, dim, centers int, spread float64) []model.Point {
	means := r.UniformPoints(centers, dim, -100, 100)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]model.Point, num)
	for i := range points {
		mean := means[i%centers]
		p := make(model.Point, dim)
		for j := range p {
			p[j] = mean[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
	}

	return points
}

// FormatRecords renders points in the comma-separated line format read by
// the dataset package, one point per line.
func FormatRecords(points []model.Point) string {
	var sb strings.Builder
	for _, p := range points {
		for j, v := range p {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
