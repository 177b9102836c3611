// Package resource bounds the resources used while loading inputs.
//
// A Controller manages three limits:
//
//   - Memory: a byte budget for inputs held at once (non-blocking, fail-fast)
//   - Concurrency: the number of inputs fetched in parallel
//   - IO: a token bucket on bytes read per second
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   1 << 30,
//	    MaxConcurrentLoads: 4,
//	    IOLimitBytesPerSec: 50 << 20,
//	})
//
//	if err := rc.AcquireLoad(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseLoad()
//
//	r := rc.Reader(ctx, body)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
