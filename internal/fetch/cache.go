package fetch

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long fetched pages and GitHub analyses stay fresh.
const DefaultCacheTTL = 24 * time.Hour

// TTLCache is a small in-memory value store with per-entry expiry.
// It is process-local and NOT suitable for distributed deployments.
type TTLCache struct {
	mu   sync.Mutex
	data map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewTTLCache creates a new empty TTL cache.
func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]cacheEntry),
	}
}

// Get returns the value for key if present and not expired.
// It lazily prunes expired entries on access.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.data[key]
	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expires) {
		delete(c.data, key)
		return nil, false
	}

	return entry.value, true
}

// Set stores a value with a time-to-live.
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheEntry{
		value:   value,
		expires: time.Now().Add(ttl),
	}
}

// Delete removes a key, forcing a fresh fetch on next access.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

// Len reports the number of entries, including any not yet pruned.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}
