package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/blobstore/minio"
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/internal/resource"
	"github.com/hupe1980/kmeans/source"
)

// NewApp returns the kmeans app reading points from stdin, with Writer set
// to out and ErrWriter (logs) set to errOut.
func NewApp(stdin io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "kmeans",
		Usage:           "cluster points with Lloyd's k-means",
		UsageText:       "kmeans [flags] K [MAX_ITER] < points.txt",
		HideHelp:        true,
		HideHelpCommand: true,
		Flags:           flags(),
		Reader:          stdin,
		Writer:          out,
		ErrWriter:       errOut,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %v", ErrGeneric, err)
		},
		// Exit codes are decided by Run.
		ExitErrHandler: func(*cli.Context, error) {},
		Action:         action,
	}
}

// Run executes the program with args (args[0] is the program name) and
// returns the process exit status. On failure exactly one message line is
// written to stdout.
//
// The first argument that is not a known flag starts the positional
// arguments, so "-3" or "-h" is validated as K like any other value.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		if path := envFile(args[1:]); path != "" {
			if err := godotenv.Load(path); err != nil {
				fmt.Fprintln(stdout, ErrGeneric)
				return 1
			}
		}
	}

	app := NewApp(stdin, stdout, stderr)
	if err := app.RunContext(ctx, separatePositional(args, app.Flags)); err != nil {
		fmt.Fprintln(stdout, Message(err))
		return 1
	}
	return 0
}

func action(c *cli.Context) error {
	args := c.Args()
	if args.Len() < 1 || args.Len() > 2 {
		return ErrGeneric
	}

	k, ok := ParseNatural(args.Get(0))
	if !ok {
		return ErrClusters
	}

	maxIterations := kmeans.DefaultMaxIterations
	if args.Len() == 2 {
		if maxIterations, ok = ParseNatural(args.Get(1)); !ok {
			return ErrMaxIterations
		}
	}
	if !(1 < maxIterations && maxIterations < 1000) {
		return ErrMaxIterations
	}

	writer, ok := codec.WriterByName(c.String(flagFormat))
	if !ok {
		return fmt.Errorf("unknown format %q", c.String(flagFormat))
	}

	logger, err := newLogger(c.App.ErrWriter, c.String(flagLogLevel), c.String(flagLogFormat))
	if err != nil {
		return err
	}
	logger = logger.WithRunID(uuid.NewString())

	loader, err := newLoader(c, logger)
	if err != nil {
		logger.Error("input configuration rejected", "error", err)
		return err
	}

	ds, err := loader.Load(c.Context, c.StringSlice(flagInput)...)
	if err != nil {
		return err
	}
	if ds.Len() == 0 {
		logger.Error("no points read")
		return kmeans.ErrEmptyInput
	}
	if !(1 < k && k < ds.Len()) {
		return ErrClusters
	}

	metrics := &kmeans.BasicMetricsCollector{}
	res, err := kmeans.Fit(ds.Points, k,
		kmeans.WithMaxIterations(maxIterations),
		kmeans.WithLogger(logger),
		kmeans.WithMetricsCollector(metrics),
	)
	if err != nil {
		return err
	}

	stats := metrics.GetStats()
	logger.Debug("run metrics",
		"iterations", stats.IterationCount,
		"empty_cluster_hits", stats.EmptyClusterHit,
		"duration_ns", stats.RunAvgNanos,
	)

	// Render fully before writing so a failure leaves stdout empty.
	var buf bytes.Buffer
	if err := writer.Write(&buf, codec.NewReport(res)); err != nil {
		return err
	}
	_, err = c.App.Writer.Write(buf.Bytes())
	return err
}

func newLogger(w io.Writer, level, format string) (*kmeans.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "", "text":
		return kmeans.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return kmeans.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func newLoader(c *cli.Context, logger *kmeans.Logger) (*source.Loader, error) {
	concurrency := c.Int64(flagConcurrency)
	if concurrency < 1 {
		return nil, fmt.Errorf("invalid concurrency %d", concurrency)
	}
	ioLimit := c.Int64(flagIOLimit)
	if ioLimit < 0 {
		return nil, fmt.Errorf("invalid io limit %d", ioLimit)
	}

	rc := resource.NewController(resource.Config{
		MaxConcurrentLoads: concurrency,
		IOLimitBytesPerSec: ioLimit,
	})

	optFns := []source.Option{
		source.WithStdin(c.App.Reader),
		source.WithResources(rc),
		source.WithLogger(logger),
	}

	if endpoint := c.String(flagMinioEndpoint); endpoint != "" {
		store, err := minio.Dial(minio.Config{
			Endpoint:  endpoint,
			AccessKey: c.String(flagMinioAccessKey),
			SecretKey: c.String(flagMinioSecretKey),
			Insecure:  c.Bool(flagMinioInsecure),
		})
		if err != nil {
			return nil, err
		}
		optFns = append(optFns, source.WithStore(source.SchemeMinio,
			func(_ context.Context, bucket string) (blobstore.BlobStore, error) {
				return store.WithBucket(bucket), nil
			}))
	}

	return source.NewLoader(optFns...), nil
}
