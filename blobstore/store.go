package blobstore

import (
	"bytes"
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for reading immutable input blobs.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader for length bytes starting at off.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	// This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// Fetcher is an optional interface for remote Blobs that can load their
// whole contents more efficiently than one sequential range read.
type Fetcher interface {
	// Fetch returns the complete contents. It honors ctx cancellation.
	Fetch(ctx context.Context) ([]byte, error)
}

// NewReader returns a sequential reader over the whole blob.
// Mappable blobs are read in place, Fetchers through Fetch, and all
// others through a single ranged read.
func NewReader(ctx context.Context, b Blob) (io.ReadCloser, error) {
	var (
		data []byte
		err  error
	)
	switch bb := b.(type) {
	case Mappable:
		data, err = bb.Bytes()
	case Fetcher:
		data, err = bb.Fetch(ctx)
	default:
		if b.Size() == 0 {
			return io.NopCloser(bytes.NewReader(nil)), nil
		}
		return b.ReadRange(ctx, 0, b.Size())
	}
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
