package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a cached page stays fresh.
const DefaultCacheTTL = 7 * 24 * time.Hour

// PageCache is a key-value cache of fetch results by URL with time-based
// expiry. Implementations: MemoryCache here, and the Postgres-backed store in
// internal/db. Keeping the cache behind this interface decouples the
// extraction engine's tests from any backing store.
type PageCache interface {
	// Get returns the cached result for url if it is younger than maxAge,
	// or (nil, nil) on a miss.
	Get(ctx context.Context, url string, maxAge time.Duration) (*Result, error)
	// Put stores a successful fetch result for url.
	Put(ctx context.Context, url string, res *Result) error
}

// MemoryCache is an in-process PageCache, used by default and in tests.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*Result
}

// NewMemoryCache creates an empty in-memory page cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*Result)}
}

// Get implements PageCache. The returned Result is a copy so callers never
// alias cache-internal state.
func (c *MemoryCache) Get(_ context.Context, url string, maxAge time.Duration) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[url]
	if !ok {
		return nil, nil
	}
	if maxAge > 0 && time.Since(entry.FetchedAt) > maxAge {
		delete(c.entries, url)
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

// Put implements PageCache.
func (c *MemoryCache) Put(_ context.Context, url string, res *Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := *res
	c.entries[url] = &cp
	return nil
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
