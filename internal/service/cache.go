package service

import (
	"log/slog"
	"strings"
	"sync"
)

// QueryCache holds query results keyed by logical query identity. Services
// read through it; mutations mark keys stale so the next read goes back to
// the source. It does not dedupe in-flight fetches or retry.
type QueryCache struct {
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]any
}

// NewQueryCache creates an empty query cache
func NewQueryCache(logger *slog.Logger) *QueryCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryCache{
		logger:  logger,
		entries: make(map[string]any),
	}
}

// Get returns the cached value for key, if fresh
func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	return v, ok
}

// Set stores a query result under key
func (c *QueryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// Invalidate marks the named query keys stale
func (c *QueryCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
	c.logger.Debug("cache invalidated", "keys", keys)
}

// InvalidatePrefix marks every key under prefix stale (search:{term} caches
// are keyed per term and can only be dropped wholesale)
func (c *QueryCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.logger.Debug("cache invalidated", "prefix", prefix)
}

// Len returns the number of cached entries
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
