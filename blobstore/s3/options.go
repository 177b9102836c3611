package s3

// DownloadConfig configures whole-object downloads.
type DownloadConfig struct {
	// PartSize is the size of each ranged GET issued by the downloader.
	// Default: 8MB
	PartSize int64

	// Concurrency is the number of parts fetched in parallel.
	// Default: 5 (matches SDK default)
	Concurrency int
}

// DefaultDownloadConfig returns the default download settings.
func DefaultDownloadConfig() DownloadConfig {
	return DownloadConfig{
		PartSize:    8 * 1024 * 1024,
		Concurrency: 5,
	}
}

type options struct {
	prefix   string
	region   string
	endpoint string
	download DownloadConfig
}

// Option configures a Store created by New.
type Option func(*options)

// WithPrefix sets a root prefix prepended to all keys (e.g. "datasets/").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the default AWS configuration.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint sets a custom endpoint for S3-compatible services.
// Path-style addressing is enabled when an endpoint is set.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithDownloadConfig configures whole-object downloads.
func WithDownloadConfig(cfg DownloadConfig) Option {
	return func(o *options) {
		o.download = cfg
	}
}
