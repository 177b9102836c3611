// Package blobstore provides storage abstraction for input data.
//
// A BlobStore opens immutable blobs by name and lists them by prefix.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - MemoryStore: In-memory, for tests
//   - s3.Store: Amazon S3 with range reads and managed downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blobs are read either through ReadAt or, for sequential parsing, through
// NewReader, which uses the zero-copy Mappable interface when available.
package blobstore
