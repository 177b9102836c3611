package codec

import (
	"github.com/hupe1980/kmeans"
)

// Report is the serializable summary of a run.
type Report struct {
	K          int         `json:"k"`
	Dimension  int         `json:"dimension"`
	Iterations int         `json:"iterations"`
	State      string      `json:"state"`
	Inertia    float64     `json:"inertia"`
	Centroids  [][]float64 `json:"centroids"`
	Sizes      []int       `json:"sizes"`
}

// NewReport summarizes res. The centroids are copied.
func NewReport(res *kmeans.Result) *Report {
	centroids := make([][]float64, len(res.Centroids))
	for i, c := range res.Centroids {
		centroids[i] = c.Clone()
	}

	return &Report{
		K:          res.K(),
		Dimension:  res.Dimension(),
		Iterations: res.Iterations,
		State:      res.State.String(),
		Inertia:    res.Inertia,
		Centroids:  centroids,
		Sizes:      res.Sizes(),
	}
}
