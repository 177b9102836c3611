package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans/blobstore"
)

func TestDial(t *testing.T) {
	t.Run("missing endpoint", func(t *testing.T) {
		_, err := Dial(Config{Bucket: "b"})
		assert.ErrorIs(t, err, ErrNoEndpoint)
	})

	t.Run("lazy connect", func(t *testing.T) {
		store, err := Dial(Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Insecure:  true,
			Bucket:    "datasets",
			Prefix:    "runs/",
		})
		require.NoError(t, err)
		assert.Equal(t, "datasets", store.bucket)
		assert.Equal(t, "runs/points.txt", store.key("points.txt"))
		assert.Equal(t, "other", store.WithBucket("other").bucket)
	})
}

func TestStore_ListError(t *testing.T) {
	// Nothing listens on port 1, so the listing reports an error.
	store, err := Dial(Config{Endpoint: "127.0.0.1:1", Insecure: true, Bucket: "b"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	names, err := store.List(ctx, "parts/")
	assert.Error(t, err)
	assert.Nil(t, names)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("network down")))
}

// TestStore_Integration requires a running MinIO instance.
// Set MINIO_ENDPOINT to run it.
func TestStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}

	bucket := "test-kmeans"
	store, err := Dial(Config{
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Insecure:  true,
		Bucket:    bucket,
		Prefix:    "test-prefix/",
	})
	require.NoError(t, err)

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("1,1\n1.1,1.1\n9,9\n")
	_, err = store.client.PutObject(ctx, bucket, store.key("parts/a.txt"), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	require.NoError(t, err)
	defer func() {
		_ = store.client.RemoveObject(ctx, bucket, store.key("parts/a.txt"), minio.RemoveObjectOptions{})
	}()

	blob, err := store.Open(ctx, "parts/a.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)

	rc, err := blob.ReadRange(ctx, 4, 7)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1.1,1.1", string(part))
	require.NoError(t, rc.Close())
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "parts/")
	require.NoError(t, err)
	assert.Contains(t, names, "parts/a.txt")

	_, err = store.Open(ctx, "parts/missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
