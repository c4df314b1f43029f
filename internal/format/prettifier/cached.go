package prettifier

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoizes another prettifier in a fixed-size LRU cache keyed by input text.
// Retried requests and polling loops often log identical bodies, and HTML rendering
// is the most expensive step of formatting them.
type Cached struct {
	next  Prettifier
	cache *lru.Cache[string, string]
}

// NewCached wraps next with an LRU cache holding up to size entries.
// A non-positive size disables caching and next is returned as is.
func NewCached(next Prettifier, size int) Prettifier {
	if size <= 0 || next == nil {
		return next
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return next
	}

	return &Cached{
		next:  next,
		cache: cache,
	}
}

// Apply implements Prettifier.
func (c *Cached) Apply(text string) string {
	if result, ok := c.cache.Get(text); ok {
		return result
	}

	result := c.next.Apply(text)
	c.cache.Add(text, result)

	return result
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}
