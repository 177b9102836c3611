package source

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrUnsupportedScheme is returned for a URI whose scheme has no store.
var ErrUnsupportedScheme = errors.New("unsupported scheme")

// Scheme names.
const (
	SchemeStdin = "stdin"
	SchemeFile  = "file"
	SchemeS3    = "s3"
	SchemeMinio = "minio"
)

// Location is a parsed input URI.
type Location struct {
	Scheme string
	// Bucket is the bucket name, or the directory for local files.
	Bucket string
	// Key is the object name inside Bucket. An empty key or one ending
	// in "/" is a prefix.
	Key string
}

// IsPrefix reports whether the location names a set of objects.
func (l Location) IsPrefix() bool {
	return l.Scheme != SchemeStdin && (l.Key == "" || strings.HasSuffix(l.Key, "/"))
}

func (l Location) String() string {
	switch l.Scheme {
	case SchemeStdin:
		return "-"
	case SchemeFile:
		return filepath.Join(l.Bucket, filepath.FromSlash(l.Key))
	default:
		return l.Scheme + "://" + l.Bucket + "/" + l.Key
	}
}

// ParseURI parses an input URI.
func ParseURI(uri string) (Location, error) {
	if uri == "" || uri == "-" {
		return Location{Scheme: SchemeStdin}, nil
	}

	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return fileLocation(uri), nil
	}

	switch scheme {
	case SchemeFile:
		u, err := url.Parse(uri)
		if err != nil {
			return Location{}, err
		}
		if u.Path == "" {
			return Location{}, fmt.Errorf("%q: empty path", uri)
		}
		return fileLocation(filepath.FromSlash(u.Path)), nil
	case SchemeS3, SchemeMinio:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return Location{}, fmt.Errorf("%q: missing bucket", uri)
		}
		return Location{Scheme: scheme, Bucket: bucket, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("%q: %w", uri, ErrUnsupportedScheme)
	}
}

func fileLocation(path string) Location {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return Location{Scheme: SchemeFile, Bucket: filepath.Clean(path)}
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return Location{Scheme: SchemeFile, Bucket: filepath.Clean(dir), Key: name}
}
