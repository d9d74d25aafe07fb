// Package cache provides a small in-memory TTL cache for rendered search
// results. The cache is an optimization only: removing it changes latency,
// never correctness.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Store is the cache contract used by the platform client.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a cached value. Returns ("", false) on miss or expiry.
	Get(key string) (string, bool)
	// Set stores a value with the given TTL. TTL<=0 means no caching.
	Set(key, value string, ttl time.Duration)
	// Prune removes expired entries and reports how many were dropped.
	Prune() int
	// Len returns the number of live entries.
	Len() int
}

// Key builds a deterministic cache key from a platform tag and every
// parameter that affects the rendered output.
func Key(platform string, parts ...string) string {
	if len(parts) == 0 {
		return platform
	}
	return platform + ":" + strings.Join(parts, "|")
}

type entry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-memory Store guarded by a RWMutex. Expired entries are
// dropped lazily on read and swept by Prune.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

func (c *Memory) Get(key string) (string, bool) {
	c.mu.RLock()
	ent, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(ent.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a fresh Set may have replaced the
		// entry between the two lock acquisitions.
		if cur, ok := c.entries[key]; ok && time.Now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}
	return ent.value, true
}

func (c *Memory) Set(key, value string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *Memory) Prune() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key, ent := range c.entries {
		if now.After(ent.expiresAt) {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ Store = (*Memory)(nil)
