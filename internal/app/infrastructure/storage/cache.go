package storage

import (
	"time"

	"github.com/maypok86/otter/v2"
)

// Cache is a small expiring map used to collapse bursts of identical
// fetches. Entries expire a fixed TTL after they were written, so a
// cache hit never extends the staleness window of live viewer counts.
// The TTL is fixed at construction.
type Cache[T any] struct {
	outer *otter.Cache[string, T]
}

func NewCache[T any](capacity int32, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		outer: otter.Must(&otter.Options[string, T]{
			InitialCapacity:  int(capacity),
			ExpiryCalculator: otter.ExpiryCreating[string, T](ttl),
		}),
	}
}

func (c *Cache[T]) Set(key string, val T) {
	c.outer.Set(key, val)
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.outer.GetIfPresent(key)
}

func (c *Cache[T]) ClearKey(key string) {
	c.outer.Invalidate(key)
}

func (c *Cache[T]) ClearAll() {
	c.outer.InvalidateAll()
}
