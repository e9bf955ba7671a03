package cache

import (
	"context"
	"time"
)

// Cache is the short-TTL key/value store behind presence, the connection
// rate limiter and the room-access cache. Entries are independent; an
// absent or expired key reads as a miss, never an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Incr increments the counter at key and returns the new value. The
	// ttl is applied only when the key is created by this call, so the
	// window is fixed from the first hit.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
