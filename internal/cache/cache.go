// Package cache provides a process-local in-memory TTL cache.
//
// Entries expire lazily on access; a background loop sweeps long-dead keys so
// the map does not grow without bound across a season of distinct queries.
package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Per-operation TTLs, graded by data volatility.
const (
	TTLTeams          = 6 * time.Hour
	TTLGamesToday     = 30 * time.Second // may include live scores
	TTLGamesPast      = 24 * time.Hour   // finals never change
	TTLPlayers        = 1 * time.Hour
	TTLSeasonAverages = 15 * time.Minute
	TTLBoxScore       = 30 * time.Second
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache. Pass enabled=false to New for
// a no-op cache (every Get misses), which keeps call sites branch-free.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool

	stop     chan struct{}
	stopOnce sync.Once

	// now is swappable for tests.
	now func() time.Time
}

// New creates a cache. When enabled, a background sweep evicts expired
// entries every 5 minutes.
func New(enabled bool) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	if enabled {
		go c.evictLoop()
	}
	return c
}

// Close stops the background sweep. Idempotent; the cache itself stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Get retrieves a cached value. An entry at or past its expiry is treated as
// absent and purged.
func (c *Cache) Get(key string) (any, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if cur, ok := c.entries[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores a value until now+ttl, unconditionally replacing any prior entry.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Typed retrieves a cached value of a concrete type. A type mismatch is
// treated as a miss, so a key reused across shapes cannot poison callers.
func Typed[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Key builds a composite cache key from an operation name and every parameter
// that affects the result, e.g. Key("games", "bdl", "2024-01-15").
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache) Stats() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]any{
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// evictLoop periodically removes expired entries until Close.
func (c *Cache) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evict()
		}
	}
}

func (c *Cache) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// ComputeETag generates a weak ETag from response bytes using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current ETag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	return ifNoneMatch == etag
}
