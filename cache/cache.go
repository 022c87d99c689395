package cache

import (
	"sync"
	"time"

	"concierge-server/entities"
)

type infoEntry struct {
	info     entities.RoomInfo
	cachedAt time.Time
}

// RoomInfoCache keeps the public branding/FAQ slice of each room in
// memory so the guest page's first paint doesn't hit the database on
// every load. Entries expire after the TTL and are invalidated on admin
// writes. The chat path never reads from here.
type RoomInfoCache struct {
	mu      sync.RWMutex
	entries map[string]infoEntry
	ttl     time.Duration
}

func NewRoomInfoCache(ttl time.Duration) *RoomInfoCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RoomInfoCache{
		entries: make(map[string]infoEntry),
		ttl:     ttl,
	}
}

// Get returns the cached info for a slug, if fresh.
func (c *RoomInfoCache) Get(slug string) (entities.RoomInfo, bool) {
	c.mu.RLock()
	entry, ok := c.entries[slug]
	c.mu.RUnlock()

	if !ok || time.Since(entry.cachedAt) > c.ttl {
		return entities.RoomInfo{}, false
	}
	return entry.info, true
}

// Set stores the info for a slug.
func (c *RoomInfoCache) Set(slug string, info entities.RoomInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[slug] = infoEntry{info: info, cachedAt: time.Now()}
}

// Invalidate drops a slug after an admin edit or delete.
func (c *RoomInfoCache) Invalidate(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, slug)
}

// Len reports how many entries are held, fresh or stale.
func (c *RoomInfoCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
