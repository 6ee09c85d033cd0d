// Package rates resolves per-category RPM rates, preferring a live external
// source behind a TTL cache and falling back to the static table.
package rates

import (
	"sync"
	"time"
)

// cacheEntry is one cached rate with its fetch timestamp. Entries older than
// the TTL are treated as absent; there is no eviction goroutine since the
// working set is one entry per category.
type cacheEntry struct {
	fetchedAt time.Time
	rate      float64
}

// rateCache provides thread-safe, TTL-bounded rate caching. The clock is a
// field so TTL expiry is deterministic under test.
type rateCache struct {
	entries map[string]cacheEntry
	now     func() time.Time
	ttl     time.Duration
	mu      sync.RWMutex
}

func newRateCache(ttl time.Duration, now func() time.Time) *rateCache {
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &rateCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// get returns a live cached rate, or reports a miss if absent or expired.
func (c *rateCache) get(categoryID string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[categoryID]
	if !exists {
		return 0, false
	}
	if c.now().Sub(entry.fetchedAt) > c.ttl {
		return 0, false
	}
	return entry.rate, true
}

// set stores a rate stamped with the current clock time.
func (c *rateCache) set(categoryID string, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[categoryID] = cacheEntry{
		rate:      rate,
		fetchedAt: c.now(),
	}
}

// clear removes all entries from the cache.
func (c *rateCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// size returns the number of entries, live or expired.
func (c *rateCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
