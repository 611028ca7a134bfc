package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsurf/docsurf/internal/extract"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(16)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func sampleResult(location string) *extract.Result {
	return &extract.Result{Module: &extract.Module{Location: location}}
}

func TestCacheHit(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	mod := time.Now()
	opts := extract.DefaultOptions()

	c.Put("src/index.ts", mod, opts, sampleResult("src/index.ts"))

	got, ok := c.Get("src/index.ts", mod, opts)
	require.True(t, ok)
	assert.Equal(t, "src/index.ts", got.Module.Location)
}

func TestCacheMissOnModTime(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	mod := time.Now()
	opts := extract.DefaultOptions()

	c.Put("src/index.ts", mod, opts, sampleResult("src/index.ts"))

	_, ok := c.Get("src/index.ts", mod.Add(time.Second), opts)
	assert.False(t, ok)
}

func TestCacheMissOnOptions(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	mod := time.Now()

	c.Put("src/index.ts", mod, extract.Options{FilterInternal: true}, sampleResult("src/index.ts"))

	_, ok := c.Get("src/index.ts", mod, extract.Options{FilterInternal: false})
	assert.False(t, ok)
}

func TestCacheMissOnUnknownLocation(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	_, ok := c.Get("src/index.ts", time.Now(), extract.DefaultOptions())
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	mod := time.Now()
	opts := extract.DefaultOptions()

	c.Put("a/index.ts", mod, opts, sampleResult("a/index.ts"))
	c.Put("b/index.ts", mod, opts, sampleResult("b/index.ts"))

	c.Invalidate("a/index.ts")

	_, ok := c.Get("a/index.ts", mod, opts)
	assert.False(t, ok)
	_, ok = c.Get("b/index.ts", mod, opts)
	assert.True(t, ok)
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	mod := time.Now()
	opts := extract.DefaultOptions()

	c.Put("a/index.ts", mod, opts, sampleResult("a/index.ts"))
	c.Put("b/index.ts", mod, opts, sampleResult("b/index.ts"))

	c.Clear()

	_, ok := c.Get("a/index.ts", mod, opts)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheOverwrite(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	opts := extract.DefaultOptions()
	first := time.Now()
	second := first.Add(time.Minute)

	c.Put("src/index.ts", first, opts, sampleResult("src/index.ts"))
	c.Put("src/index.ts", second, opts, sampleResult("src/index.ts"))

	_, ok := c.Get("src/index.ts", first, opts)
	assert.False(t, ok)
	_, ok = c.Get("src/index.ts", second, opts)
	assert.True(t, ok)
}
