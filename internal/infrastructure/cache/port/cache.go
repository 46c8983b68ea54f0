package port

import "context"

// Cache is the counter-oriented key-value contract the application uses for
// unread bookkeeping. Implementations must be concurrency-safe, and all
// methods are context-aware so callers can impose their own timeouts.
//
// Counters are best-effort state: losing one is acceptable, the message rows
// in the store remain the source of truth.
type Cache interface {
	// Incr increments the counter at key by one and returns the new value.
	// A missing key counts as zero.
	Incr(ctx context.Context, key string) (int64, error)

	// GetInt returns the counter value at key, or ErrMiss when the key does
	// not exist.
	GetInt(ctx context.Context, key string) (int64, error)

	// Del removes one or more keys and returns the number of keys removed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Ping verifies connectivity with the cache backend.
	Ping(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// ErrMiss is returned by adapters to signal a missing key in a typed way, so
// callers can tell misses apart from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }
