// Package topologycache caches rendered diagram exports per (format, revision).
// Entries age out after a TTL and the whole cache is purged on every mutation.
package topologycache

import (
	"strconv"
	"time"

	"github.com/Beenod004/Networkfault/internal/pkg/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Export is a rendered diagram artifact.
type Export struct {
	ContentType string
	Body        []byte
}

// Cache holds exports in a size-bounded LRU with TTL. Thread-safe.
type Cache struct {
	lru *expirable.LRU[string, Export]
}

// New returns a cache. If size <= 0 or ttl <= 0, Get always misses (cache disabled).
func New(size int, ttl time.Duration) *Cache {
	if size <= 0 || ttl <= 0 {
		return &Cache{}
	}
	return &Cache{lru: expirable.NewLRU[string, Export](size, nil, ttl)}
}

func key(format string, revision uint64) string {
	return format + "|" + strconv.FormatUint(revision, 10)
}

// Get returns a cached export if present and not expired. Records hit/miss.
func (c *Cache) Get(format string, revision uint64) (Export, bool) {
	if c.lru == nil {
		metrics.ExportCacheMissesTotal.Inc()
		return Export{}, false
	}
	e, ok := c.lru.Get(key(format, revision))
	if !ok {
		metrics.ExportCacheMissesTotal.Inc()
		return Export{}, false
	}
	metrics.ExportCacheHitsTotal.Inc()
	return e, true
}

// Set stores an export for the given format and revision.
func (c *Cache) Set(format string, revision uint64, e Export) {
	if c.lru == nil || e.Body == nil {
		return
	}
	c.lru.Add(key(format, revision), e)
}

// Invalidate drops every entry.
func (c *Cache) Invalidate() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
