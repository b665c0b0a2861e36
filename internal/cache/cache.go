// Package cache holds the most recent feed snapshot with a freshness TTL.
// The backend serves from this cache only; when the upstream feed fails,
// the previous snapshot stays in place and is served marked stale.
package cache

import (
	"sync"
	"time"

	"github.com/Kamalbura/AQI/pkg/aqi"
)

// DefaultTTL is the snapshot freshness window when none is configured.
const DefaultTTL = 60 * time.Second

// Snapshot is one complete fetch of processed readings, oldest first.
type Snapshot struct {
	Readings  []aqi.ProcessedReading
	FetchedAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	snap *Snapshot
}

// New creates a cache with the given TTL; non-positive TTLs fall back to
// DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl}
}

// Set replaces the cached snapshot.
func (c *Cache) Set(readings []aqi.ProcessedReading, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = &Snapshot{Readings: readings, FetchedAt: fetchedAt}
}

// Get returns the cached snapshot and whether it is still fresh. A nil
// snapshot means nothing has ever been fetched. A stale snapshot is still
// returned; serving it is the caller's fallback policy.
func (c *Cache) Get() (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return nil, false
	}
	return c.snap, time.Since(c.snap.FetchedAt) <= c.ttl
}

// Latest returns the newest reading of the cached snapshot, if any.
func (c *Cache) Latest() (aqi.ProcessedReading, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil || len(c.snap.Readings) == 0 {
		return aqi.ProcessedReading{}, false
	}
	return c.snap.Readings[len(c.snap.Readings)-1], true
}

// TTL reports the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
