package ws

import (
	"context"
	"fmt"
	"time"

	"freelance-hub-api/cache"
)

const (
	connectionLimit  = 100
	connectionWindow = time.Minute
)

// ConnectionLimiter caps upgrade attempts per client network origin.
// Checked before authentication; an over-budget origin is rejected with
// CloseRateLimited.
type ConnectionLimiter struct {
	cache  cache.Cache
	limit  int64
	window time.Duration
}

func NewConnectionLimiter(c cache.Cache) *ConnectionLimiter {
	return &ConnectionLimiter{cache: c, limit: connectionLimit, window: connectionWindow}
}

// Allow counts one attempt from origin and reports whether it is within
// budget. Cache faults fail open: rate limiting is protection, not
// authorization.
func (l *ConnectionLimiter) Allow(ctx context.Context, origin string) bool {
	count, err := l.cache.Incr(ctx, fmt.Sprintf("chat_rate_limit_%s", origin), l.window)
	if err != nil {
		return true
	}
	return count <= l.limit
}
