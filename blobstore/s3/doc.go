// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	blob, err := store.Open(ctx, "points.txt")
//
// # Features
//
//   - Range reads for partial fetches
//   - Whole-object reads through the concurrent s3 manager downloader
//   - Automatic pagination for listing
//   - Configurable prefix and endpoint (S3-compatible services)
package s3
