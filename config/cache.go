package config

import "sync"

// Cache memoises parsed configuration documents keyed by resolved absolute
// file path, so the same file is read and parsed at most once per cache
// lifetime. Invalidation is explicit only: there is no TTL and no file
// modification check. The cache is safe for concurrent use; the mutex is
// held across the load callback so concurrent requests for the same path
// cannot race into duplicate reads.
type Cache struct {
	mu   sync.Mutex
	docs map[string]map[string]any
}

// NewCache returns an empty document cache. Applications typically create
// one at their composition root and share it through Options.Cache.
func NewCache() *Cache {
	return &Cache{docs: make(map[string]map[string]any)}
}

// GetOrLoad returns the cached document for path, invoking load and storing
// its result on first use. Load failures are not cached.
func (c *Cache) GetOrLoad(path string, load func() (map[string]any, error)) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc, ok := c.docs[path]; ok {
		return doc, nil
	}

	doc, err := load()
	if err != nil {
		return nil, err
	}
	c.docs[path] = doc
	return doc, nil
}

// Invalidate drops the cached document for path, forcing a re-read on the
// next load.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.docs, path)
	c.mu.Unlock()
}

// Reset drops every cached document.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.docs = make(map[string]map[string]any)
	c.mu.Unlock()
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}
