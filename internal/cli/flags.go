package cli

import (
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	flagInput          = "input"
	flagFormat         = "format"
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagEnvFile        = "env-file"
	flagConcurrency    = "concurrency"
	flagIOLimit        = "io-limit"
	flagMinioEndpoint  = "minio-endpoint"
	flagMinioAccessKey = "minio-access-key"
	flagMinioSecretKey = "minio-secret-key"
	flagMinioInsecure  = "minio-insecure"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    flagInput,
			Aliases: []string{"i"},
			Usage:   "read points from `URI` (-, path, file://, s3://, minio://); repeatable",
			EnvVars: []string{"KMEANS_INPUT"},
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "output format: text, json or go-json",
			EnvVars: []string{"KMEANS_FORMAT"},
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   "warn",
			Usage:   "log level: debug, info, warn or error",
			EnvVars: []string{"KMEANS_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    flagLogFormat,
			Value:   "text",
			Usage:   "log format: text or json",
			EnvVars: []string{"KMEANS_LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:  flagEnvFile,
			Usage: "load environment variables from `FILE` before reading flags",
		},
		&cli.Int64Flag{
			Name:    flagConcurrency,
			Value:   4,
			Usage:   "maximum number of inputs fetched in parallel",
			EnvVars: []string{"KMEANS_CONCURRENCY"},
		},
		&cli.Int64Flag{
			Name:    flagIOLimit,
			Usage:   "read limit in bytes per second (0 = unlimited)",
			EnvVars: []string{"KMEANS_IO_LIMIT"},
		},
		&cli.StringFlag{
			Name:    flagMinioEndpoint,
			Usage:   "endpoint (host:port) for minio:// inputs",
			EnvVars: []string{"KMEANS_MINIO_ENDPOINT"},
		},
		&cli.StringFlag{
			Name:    flagMinioAccessKey,
			EnvVars: []string{"KMEANS_MINIO_ACCESS_KEY"},
		},
		&cli.StringFlag{
			Name:    flagMinioSecretKey,
			EnvVars: []string{"KMEANS_MINIO_SECRET_KEY"},
		},
		&cli.BoolFlag{
			Name:    flagMinioInsecure,
			Usage:   "use plain HTTP for minio:// inputs",
			EnvVars: []string{"KMEANS_MINIO_INSECURE"},
		},
	}
}

// envFile returns the value of --env-file in args, if present.
// Environment-backed flags are resolved while parsing, so the file has to
// be loaded before the app runs.
func envFile(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if name != flagEnvFile {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// separatePositional inserts "--" ahead of the first argument that is not
// a flag of fs, so that K and MAX_ITER arguments such as "-3" reach the
// action instead of failing flag parsing. args[0] is the program name.
func separatePositional(args []string, fs []cli.Flag) []string {
	takesValue := make(map[string]bool)
	for _, f := range fs {
		_, isBool := f.(*cli.BoolFlag)
		for _, name := range f.Names() {
			takesValue[name] = !isBool
		}
	}

	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" || a == "-" || !strings.HasPrefix(a, "-") {
			return args
		}

		name, _, inline := strings.Cut(strings.TrimLeft(a, "-"), "=")
		needsValue, known := takesValue[name]
		if !known {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if needsValue && !inline {
			i++ // skip the flag's value
		}
	}
	return args
}
