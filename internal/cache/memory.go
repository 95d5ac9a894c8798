package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// evictionSweep is how often expired answers are purged from memory.
const evictionSweep = 10 * time.Minute

// MemoryCache is the in-process layer of the answer cache. Generated
// answers are small strings, so entries live in memory as raw bytes
// with a per-entry TTL (0 means the cache default).
type MemoryCache struct {
	entries *gocache.Cache
}

// NewMemoryCache creates a memory cache whose entries expire after
// defaultTTL unless Set overrides it.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: gocache.New(defaultTTL, evictionSweep),
	}
}

// Get returns the cached answer for key, if present and unexpired.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.entries.Get(key)
	if !found {
		return nil, false
	}
	data, ok := val.([]byte)
	if !ok {
		return nil, false
	}
	return data, true
}

// Set stores an answer under key with the given TTL.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.entries.Set(key, value, ttl)
	return nil
}

// Delete removes the answer stored under key.
func (c *MemoryCache) Delete(key string) error {
	c.entries.Delete(key)
	return nil
}
