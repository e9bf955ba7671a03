package ws

import (
	"context"
	"fmt"
	"time"

	"freelance-hub-api/cache"
)

const presenceTTL = 5 * time.Minute

// PresenceTracker records whether a user currently holds a live chat
// connection. Entries expire; a miss reads as unknown. It is an
// optimization only — room participation is always re-verified against
// persisted membership on a cache miss elsewhere.
type PresenceTracker struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewPresenceTracker(c cache.Cache) *PresenceTracker {
	return &PresenceTracker{cache: c, ttl: presenceTTL}
}

func presenceKey(userID string) string {
	return fmt.Sprintf("user_presence_%s", userID)
}

func (p *PresenceTracker) SetOnline(ctx context.Context, userID string, online bool) error {
	value := "0"
	if online {
		value = "1"
	}
	return p.cache.Set(ctx, presenceKey(userID), value, p.ttl)
}

// IsOnline reports the cached presence state. known is false when the
// entry is absent, expired, or the cache failed.
func (p *PresenceTracker) IsOnline(ctx context.Context, userID string) (online bool, known bool) {
	value, ok, err := p.cache.Get(ctx, presenceKey(userID))
	if err != nil || !ok {
		return false, false
	}
	return value == "1", true
}
