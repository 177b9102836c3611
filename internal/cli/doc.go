// Package cli implements the kmeans command line program.
//
//	kmeans [flags] K [MAX_ITER] < points.txt
//
// The result, or one of three fixed error messages, is written to stdout.
// Logs go to stderr.
package cli
