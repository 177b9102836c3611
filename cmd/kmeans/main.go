// Package main is the kmeans command itself.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hupe1980/kmeans/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
