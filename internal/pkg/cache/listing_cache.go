package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const generationKey = "catalog:listing:generation"

// ListingCache caches storefront listing responses in Redis. Keys embed a
// generation counter; bumping the generation on settings or stock changes
// orphans every cached listing at once without scanning keys. The settings
// record itself is never cached here — it is read fresh per request.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{
		rdb: rdb,
		ttl: ttl,
	}
}

// Key builds a generation-scoped cache key from listing parameters.
// Returns "" when the cache is unavailable, which disables caching.
func (c *ListingCache) Key(ctx context.Context, params string) string {
	if c == nil || c.rdb == nil {
		return ""
	}
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}
	return fmt.Sprintf("catalog:listing:g%d:%s", gen, params)
}

func (c *ListingCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil || key == "" {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *ListingCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil || key == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Best effort; a failed write only costs a cache miss
	c.rdb.Set(ctx, key, raw, c.ttl)
}

// Invalidate bumps the generation counter, orphaning all cached listings.
// Orphaned entries expire via their TTL.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Incr(ctx, generationKey)
}
