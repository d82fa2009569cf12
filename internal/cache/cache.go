// Package cache provides time-bounded memoization of fetched-and-predicted
// fixture lists.
package cache

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/matchcast/internal/metrics"
)

// Key is the composite cache key: entity identifier, query direction, league.
type Key struct {
	Entity    string
	Direction string
	League    string
}

// String returns the serialized key form.
func (k Key) String() string {
	return fmt.Sprintf("%s_%s_%s", k.Entity, k.Direction, k.League)
}

// entry pairs a payload with its creation time. Staleness is judged against
// the entry's own timestamp rather than go-cache eviction, so an injected
// clock controls TTL decisions and stale entries simply persist until
// overwritten by the next miss.
type entry struct {
	data      any
	timestamp time.Time
}

// FixtureCache memoizes computed fixture payloads. A single mutex guards the
// read-check-compute-write path, so concurrent misses for one key compute
// once.
type FixtureCache struct {
	store     *gocache.Cache
	mu        sync.Mutex
	now       func() time.Time
	hitCount  uint64
	missCount uint64
}

// NewFixtureCache creates an empty cache.
func NewFixtureCache() *FixtureCache {
	return &FixtureCache{
		store: gocache.New(gocache.NoExpiration, 0),
		now:   time.Now,
	}
}

// NewFixtureCacheWithClock creates a cache with an injected clock for tests.
func NewFixtureCacheWithClock(now func() time.Time) *FixtureCache {
	c := NewFixtureCache()
	c.now = now
	return c
}

// GetOrCompute returns the cached payload when its age is under ttl,
// otherwise invokes compute, stores the result with a fresh timestamp, and
// returns it. A compute error is returned without disturbing whatever stale
// entry may exist.
func (c *FixtureCache) GetOrCompute(key Key, ttl time.Duration, compute func() (any, error)) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if raw, found := c.store.Get(key.String()); found {
		if e, ok := raw.(entry); ok && c.now().Sub(e.timestamp) < ttl {
			c.hitCount++
			c.updateMetrics()
			return e.data, nil
		}
	}

	c.missCount++
	c.updateMetrics()

	data, err := compute()
	if err != nil {
		return nil, err
	}

	c.store.Set(key.String(), entry{data: data, timestamp: c.now()}, gocache.NoExpiration)
	return data, nil
}

// Invalidate drops one key so the next read recomputes.
func (c *FixtureCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Delete(key.String())
}

// Clear flushes the entire cache
func (c *FixtureCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Flush()
	c.hitCount = 0
	c.missCount = 0
}

// Stats returns cache statistics
func (c *FixtureCache) Stats() (hits, misses uint64, ratio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statsLocked()
}

// statsLocked reads the counters; callers hold mu.
func (c *FixtureCache) statsLocked() (hits, misses uint64, ratio float64) {
	hits = c.hitCount
	misses = c.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of items in cache
func (c *FixtureCache) ItemCount() int {
	return c.store.ItemCount()
}

func (c *FixtureCache) updateMetrics() {
	_, _, ratio := c.statsLocked()
	metrics.FixtureCacheHitRatio.Set(ratio)
}
