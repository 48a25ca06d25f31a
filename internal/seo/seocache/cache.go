// Package seocache provides a small TTL memoization cache for derived
// SEO payloads (metadata, structured data). Values are cached per key
// and recomputed after expiry; the cache is caller-owned and safe for
// concurrent use.
package seocache

import (
	"sync"
	"time"
)

// DefaultTTL is the expiry used when a non-positive TTL is configured.
const DefaultTTL = 5 * time.Minute

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache memoizes values of type V by string key with a fixed TTL.
type Cache[V any] struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	m   map[string]entry[V]
}

// New creates a cache with the given TTL.
func New[V any](ttl time.Duration) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{ttl: ttl, now: time.Now, m: make(map[string]entry[V])}
}

// Get returns the cached value for key and whether it was present and
// unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok || c.now().After(e.expires) {
		delete(c.m, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = entry[V]{value: value, expires: c.now().Add(c.ttl)}
}

// GetOrCompute returns the cached value for key, computing and caching
// it when absent or expired. The compute function runs outside the
// cache lock; concurrent callers may compute the same key.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}

// Delete removes key from the cache.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

// Len returns the number of stored entries, expired ones included
// until they are touched or purged.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Purge drops every expired entry and reports how many were removed.
func (c *Cache[V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for k, e := range c.m {
		if now.After(e.expires) {
			delete(c.m, k)
			removed++
		}
	}
	return removed
}
