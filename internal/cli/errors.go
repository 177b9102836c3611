package cli

import (
	"errors"

	"github.com/hupe1980/kmeans"
)

// User-facing failures. The message is printed verbatim to stdout.
var (
	ErrClusters      = errors.New("Incorrect number of clusters!")
	ErrMaxIterations = errors.New("Incorrect maximum iteration!")
	ErrGeneric       = errors.New("An Error Has Occurred")
)

// Message returns the line printed for err.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrClusters), errors.Is(err, kmeans.ErrInvalidK):
		return ErrClusters.Error()
	case errors.Is(err, ErrMaxIterations), errors.Is(err, kmeans.ErrInvalidMaxIterations):
		return ErrMaxIterations.Error()
	default:
		return ErrGeneric.Error()
	}
}
