// Package source loads point datasets from input URIs.
//
// Supported forms:
//
//	-                     standard input (also the empty string)
//	/path/points.txt      local file, memory mapped
//	file:///path/points   local file
//	s3://bucket/key       Amazon S3
//	minio://bucket/key    MinIO or another S3-compatible service
//
// A key ending in "/" names every object below that prefix, read in name
// order. Names ending in ".zst" are zstd-compressed, names ending in ".lz4"
// are LZ4 frames.
//
// Several URIs are fetched concurrently but always joined in argument
// order, so the resulting point order never depends on fetch timing.
package source
