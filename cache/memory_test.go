package cache

import (
	"context"
	"testing"
	"time"
)

func newTestCache(start time.Time) (*MemoryCache, *time.Time) {
	current := start
	c := NewMemoryCache()
	c.now = func() time.Time { return current }
	return c, &current
}

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Now())

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "v" {
		t.Fatalf("Get = (%q, %v), want (v, true)", value, ok)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Now())

	_, ok, err := c.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(time.Now())

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	*now = now.Add(time.Minute + time.Second)

	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected entry to expire")
	}
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(time.Now())

	if err := c.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	*now = now.Add(24 * time.Hour)

	_, ok, _ := c.Get(ctx, "k")
	if !ok {
		t.Fatal("zero-ttl entry should not expire")
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Now())

	_ = c.Set(ctx, "k", "v", time.Minute)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, ok, _ := c.Get(ctx, "k")
	if ok {
		t.Fatal("expected key to be deleted")
	}
}

func TestMemoryCacheIncr(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Now())

	for want := int64(1); want <= 3; want++ {
		got, err := c.Incr(ctx, "counter", time.Minute)
		if err != nil {
			t.Fatalf("Incr: %v", err)
		}
		if got != want {
			t.Fatalf("Incr = %d, want %d", got, want)
		}
	}
}

func TestMemoryCacheIncrWindowResets(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(time.Now())

	if _, err := c.Incr(ctx, "counter", time.Minute); err != nil {
		t.Fatalf("Incr: %v", err)
	}
	if _, err := c.Incr(ctx, "counter", time.Minute); err != nil {
		t.Fatalf("Incr: %v", err)
	}

	*now = now.Add(2 * time.Minute)

	got, err := c.Incr(ctx, "counter", time.Minute)
	if err != nil {
		t.Fatalf("Incr: %v", err)
	}
	if got != 1 {
		t.Fatalf("Incr after window = %d, want 1", got)
	}
}
