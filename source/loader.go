package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/blobstore/s3"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/internal/resource"
)

// ErrStdinRepeated is returned when standard input is listed more than once.
var ErrStdinRepeated = errors.New("standard input listed more than once")

// StoreFunc returns the store serving a bucket (a directory for local files).
type StoreFunc func(ctx context.Context, bucket string) (blobstore.BlobStore, error)

// Loader resolves input URIs and parses them into one dataset.
type Loader struct {
	stdin     io.Reader
	stores    map[string]StoreFunc
	resources *resource.Controller
	logger    *kmeans.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithStdin sets the reader used for "-". Default: os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithStore registers the store factory for a scheme, replacing any default.
func WithStore(scheme string, fn StoreFunc) Option {
	return func(l *Loader) {
		l.stores[scheme] = fn
	}
}

// WithResources bounds concurrency, memory and read throughput.
func WithResources(rc *resource.Controller) Option {
	return func(l *Loader) {
		l.resources = rc
	}
}

// WithLogger sets the logger for load events.
func WithLogger(logger *kmeans.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = kmeans.NoopLogger()
		}
		l.logger = logger
	}
}

// NewLoader creates a Loader. Local files and s3:// are served by default;
// minio:// needs a store registered with WithStore.
func NewLoader(optFns ...Option) *Loader {
	l := &Loader{
		stdin: os.Stdin,
		stores: map[string]StoreFunc{
			SchemeFile: func(_ context.Context, dir string) (blobstore.BlobStore, error) {
				return blobstore.NewLocalStore(dir), nil
			},
			SchemeS3: func(ctx context.Context, bucket string) (blobstore.BlobStore, error) {
				store, err := s3.New(ctx, bucket)
				if err != nil {
					return nil, err
				}
				return store, nil
			},
		},
		logger: kmeans.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(l)
	}

	return l
}

// Load reads every URI and joins the records in argument order.
// No URIs means standard input.
func (l *Loader) Load(ctx context.Context, uris ...string) (*dataset.Dataset, error) {
	if len(uris) == 0 {
		uris = []string{"-"}
	}

	locs := make([]Location, len(uris))
	stdin := false
	for i, uri := range uris {
		loc, err := ParseURI(uri)
		if err != nil {
			return nil, err
		}
		if loc.Scheme == SchemeStdin {
			if stdin {
				return nil, fmt.Errorf("%q: %w", uri, ErrStdinRepeated)
			}
			stdin = true
		}
		if _, ok := l.stores[loc.Scheme]; !ok && loc.Scheme != SchemeStdin {
			return nil, fmt.Errorf("%q: %w", uri, ErrUnsupportedScheme)
		}
		locs[i] = loc
	}

	sets := make([]*dataset.Dataset, len(locs))
	g, gctx := errgroup.WithContext(ctx)

	for i, loc := range locs {
		g.Go(func() error {
			if err := l.resources.AcquireLoad(gctx); err != nil {
				return err
			}
			defer l.resources.ReleaseLoad()

			ds, err := l.loadLocation(gctx, loc)
			if err != nil {
				l.logger.LogLoad(gctx, uris[i], 0, err)
				return fmt.Errorf("%s: %w", loc, err)
			}
			l.logger.LogLoad(gctx, uris[i], ds.Len(), nil)
			sets[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dataset.Concat(sets...)
}

func (l *Loader) loadLocation(ctx context.Context, loc Location) (*dataset.Dataset, error) {
	if loc.Scheme == SchemeStdin {
		return l.parse(ctx, "", l.stdin)
	}

	store, err := l.stores[loc.Scheme](ctx, loc.Bucket)
	if err != nil {
		return nil, err
	}

	if !loc.IsPrefix() {
		return l.loadBlob(ctx, store, loc.Key)
	}

	names, err := store.List(ctx, loc.Key)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, blobstore.ErrNotFound
	}

	sets := make([]*dataset.Dataset, 0, len(names))
	for _, name := range names {
		ds, err := l.loadBlob(ctx, store, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sets = append(sets, ds)
	}

	return dataset.Concat(sets...)
}

func (l *Loader) loadBlob(ctx context.Context, store blobstore.BlobStore, name string) (*dataset.Dataset, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	size := blob.Size()
	if err := l.resources.AcquireMemory(size); err != nil {
		return nil, err
	}
	defer l.resources.ReleaseMemory(size)

	rc, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return l.parse(ctx, name, rc)
}

func (l *Loader) parse(ctx context.Context, name string, r io.Reader) (*dataset.Dataset, error) {
	dr, err := Decompress(name, l.resources.Reader(ctx, r))
	if err != nil {
		return nil, err
	}
	defer func() { _ = dr.Close() }()

	return dataset.Parse(dr)
}
