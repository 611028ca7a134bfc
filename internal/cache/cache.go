// Package cache memoizes root extractions across watch cycles. Entries
// are keyed by root location and invalidated when the file's
// modification time or the filtering options change.
package cache

import (
	"time"

	"github.com/maypok86/otter"

	"github.com/docsurf/docsurf/internal/extract"
)

type entry struct {
	modTime time.Time
	opts    extract.Options
	result  *extract.Result
}

// Cache is a bounded extraction cache.
type Cache struct {
	inner otter.Cache[string, entry]
}

// New creates a cache holding up to capacity root extractions.
func New(capacity int) (*Cache, error) {
	inner, err := otter.MustBuilder[string, entry](capacity).Build()
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Get returns a cached result for location if it was produced from the
// same modification time and options.
func (c *Cache) Get(location string, modTime time.Time, opts extract.Options) (*extract.Result, bool) {
	e, ok := c.inner.Get(location)
	if !ok {
		return nil, false
	}
	if !e.modTime.Equal(modTime) || e.opts != opts {
		return nil, false
	}
	return e.result, true
}

// Put stores a result for location.
func (c *Cache) Put(location string, modTime time.Time, opts extract.Options, result *extract.Result) {
	c.inner.Set(location, entry{modTime: modTime, opts: opts, result: result})
}

// Invalidate drops the cached result for location, if any.
func (c *Cache) Invalidate(location string) {
	c.inner.Delete(location)
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.inner.Clear()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.inner.Size()
}

// Close releases the cache's resources.
func (c *Cache) Close() {
	c.inner.Close()
}
