package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKeyString tests composite key serialization
func TestKeyString(t *testing.T) {
	key := Key{Entity: "81", Direction: "next", League: "laliga"}
	assert.Equal(t, "81_next_laliga", key.String())
}

// TestGetOrComputeWithinTTL tests that two reads inside the TTL compute once
func TestGetOrComputeWithinTTL(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewFixtureCacheWithClock(func() time.Time { return now })

	key := Key{Entity: "81", Direction: "next", League: "laliga"}
	calls := 0
	compute := func() (any, error) {
		calls++
		return "payload", nil
	}

	first, err := c.GetOrCompute(key, 60*time.Second, compute)
	require.NoError(t, err)
	assert.Equal(t, "payload", first)

	now = now.Add(59 * time.Second)
	second, err := c.GetOrCompute(key, 60*time.Second, compute)
	require.NoError(t, err)
	assert.Equal(t, "payload", second)

	assert.Equal(t, 1, calls)
}

// TestGetOrComputeExpiry tests recompute after the TTL elapses on a
// simulated clock
func TestGetOrComputeExpiry(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewFixtureCacheWithClock(func() time.Time { return now })

	key := Key{Entity: "81", Direction: "next", League: "laliga"}
	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	_, err := c.GetOrCompute(key, 60*time.Second, compute)
	require.NoError(t, err)

	now = now.Add(61 * time.Second)
	result, err := c.GetOrCompute(key, 60*time.Second, compute)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, result)
}

// TestGetOrComputeError tests that compute failures are not cached
func TestGetOrComputeError(t *testing.T) {
	c := NewFixtureCache()
	key := Key{Entity: "x", Direction: "next", League: "laliga"}

	boom := errors.New("upstream down")
	_, err := c.GetOrCompute(key, time.Minute, func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	// Next read retries the computation
	result, err := c.GetOrCompute(key, time.Minute, func() (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

// TestGetOrComputeConcurrentMisses tests single-flight behavior under the
// cache mutex
func TestGetOrComputeConcurrentMisses(t *testing.T) {
	c := NewFixtureCache()
	key := Key{Entity: "81", Direction: "matchday", League: "laliga"}

	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrCompute(key, time.Minute, func() (any, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return "shared", nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

// TestInvalidate tests explicit invalidation forces a recompute
func TestInvalidate(t *testing.T) {
	c := NewFixtureCache()
	key := Key{Entity: "81", Direction: "last", League: "laliga"}

	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	_, _ = c.GetOrCompute(key, time.Hour, compute)
	c.Invalidate(key)
	_, _ = c.GetOrCompute(key, time.Hour, compute)

	assert.Equal(t, 2, calls)
}

// TestStats tests hit/miss accounting
func TestStats(t *testing.T) {
	c := NewFixtureCache()
	key := Key{Entity: "81", Direction: "next", League: "laliga"}

	compute := func() (any, error) { return "v", nil }
	_, _ = c.GetOrCompute(key, time.Hour, compute) // miss
	_, _ = c.GetOrCompute(key, time.Hour, compute) // hit

	hits, misses, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 0.5, ratio)
}

// TestStatsConcurrentReads tests that Stats can race GetOrCompute cleanly;
// meant to run under the race detector
func TestStatsConcurrentReads(t *testing.T) {
	c := NewFixtureCache()
	key := Key{Entity: "81", Direction: "next", League: "laliga"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = c.GetOrCompute(key, time.Hour, func() (any, error) { return "v", nil })
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			c.Stats()
		}
	}()
	wg.Wait()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(200), hits+misses)
}
