package engine

import (
	"sync"
	"time"

	"github.com/joaovbs/sugestor/pkg/model"
)

// CacheStats is operational introspection for tests and monitoring.
type CacheStats struct {
	Size    int
	Entries []string
}

type cacheEntry struct {
	result  model.CorrectionResult
	created time.Time
}

// resultCache memoizes verdicts per normalized query. Expiry is lazy:
// a stale entry is discarded at read time regardless of whether the
// bulk sweep has run. The lock makes the engine safe to share between
// concurrent search handlers.
type resultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	sweepAt int
	entries map[string]cacheEntry
	now     func() time.Time // swapped in expiry tests
}

func newResultCache(ttl time.Duration, sweepAt int) *resultCache {
	return &resultCache{
		ttl:     ttl,
		sweepAt: sweepAt,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *resultCache) get(key string) (model.CorrectionResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return model.CorrectionResult{}, false
	}
	if c.now().Sub(entry.created) > c.ttl {
		c.mu.Lock()
		// re-check under the write lock, a writer may have refreshed it
		if current, still := c.entries[key]; still && c.now().Sub(current.created) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return model.CorrectionResult{}, false
	}
	return entry.result, true
}

func (c *resultCache) put(key string, result model.CorrectionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.sweepAt {
		c.sweep()
	}
	c.entries[key] = cacheEntry{result: result, created: c.now()}
}

// sweep drops expired entries; when everything is still fresh it evicts
// the oldest entries instead so the map cannot grow without bound.
func (c *resultCache) sweep() {
	now := c.now()
	for key, entry := range c.entries {
		if now.Sub(entry.created) > c.ttl {
			delete(c.entries, key)
		}
	}

	for len(c.entries) >= c.sweepAt {
		var oldestKey string
		var oldest time.Time
		for key, entry := range c.entries {
			if oldestKey == "" || entry.created.Before(oldest) {
				oldestKey = key
				oldest = entry.created
			}
		}
		delete(c.entries, oldestKey)
	}
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *resultCache) stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := CacheStats{Size: len(c.entries)}
	stats.Entries = make([]string, 0, len(c.entries))
	for key := range c.entries {
		stats.Entries = append(stats.Entries, key)
	}
	return stats
}
