package namestrip

import "sync"

// Cache stores previously computed strip results keyed by the raw input name
// joined with the raw option mask. Implementations must be safe for
// concurrent use when the owning Stripper is shared between goroutines.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, overwriting any previous entry.
	Set(key, value string)
	// Clear removes every entry.
	Clear()
}

// MemoryCache is an unbounded in-memory Cache guarded by a read-write mutex.
// Entries are small and the operation is referentially transparent, so there
// is no eviction; long-running processes reset it with Clear.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get returns the cached value for key and whether it was present.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	return v, ok
}

// Set stores value under key.
func (c *MemoryCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// Clear drops every entry.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string)
}

// Len reports the current number of entries, useful for monitoring growth of
// the unbounded store.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// noopCache backs strippers constructed with caching disabled.
type noopCache struct{}

func (noopCache) Get(string) (string, bool) { return "", false }
func (noopCache) Set(string, string)        {}
func (noopCache) Clear()                    {}
