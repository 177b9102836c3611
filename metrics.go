package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIteration is called after each assignment/update cycle.
	// movement is the largest centroid shift, inertia the within-cluster
	// sum of squares, empty the number of clusters that kept their centroid.
	RecordIteration(iteration int, movement, inertia float64, empty int)

	// RecordRun is called once per Fit call.
	// err is non-nil if the input was rejected.
	RecordRun(iterations int, state State, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, float64, int) {}
func (NoopMetricsCollector) RecordRun(int, State, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	ConvergedCount  atomic.Int64
	ExhaustedCount  atomic.Int64
	IterationCount  atomic.Int64
	EmptyClusterHit atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ int, _, _ float64, empty int) {
	b.IterationCount.Add(1)
	b.EmptyClusterHit.Add(int64(empty))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, state State, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	switch state {
	case StateConverged:
		b.ConvergedCount.Add(1)
	case StateExhausted:
		b.ExhaustedCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		ConvergedCount:  b.ConvergedCount.Load(),
		ExhaustedCount:  b.ExhaustedCount.Load(),
		IterationCount:  b.IterationCount.Load(),
		EmptyClusterHit: b.EmptyClusterHit.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunAvgNanos     int64
	ConvergedCount  int64
	ExhaustedCount  int64
	IterationCount  int64
	EmptyClusterHit int64
}
