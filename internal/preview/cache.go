package preview

import (
	"sync"

	"github.com/televisionhq/television/internal/cache"
)

// DefaultCacheCapacity is the default number of raw preview artifacts kept
// (spec §3: "capacity C_preview, default 50 rendered previews; 100 raw").
const DefaultCacheCapacity = 100

// Cache is an LRU cache for preview artifacts keyed by entry display
// string, backed by the shared ring-set. Insertion semantics match spec
// §4.3 exactly: a key already present is left untouched (no move-to-front;
// this is insertion-order LRU, not recency-LRU).
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Artifact
	ring    *cache.RingSet[string]
}

// NewCache creates a cache with the given capacity.
func NewCache(capacity int) *Cache {
	return &Cache{
		entries: make(map[string]*Artifact),
		ring:    cache.NewRingSet[string](capacity),
	}
}

// Get returns the cached artifact for key, if any.
func (c *Cache) Get(key string) (*Artifact, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.entries[key]
	return a, ok
}

// Insert stores artifact under key. If the key is already present this is a
// no-op for eviction ordering purposes (the stored value is still
// refreshed, since preview recomputation is cheap and the point of
// insertion-order LRU here is eviction order, not value staleness).
func (c *Cache) Insert(key string, artifact *Artifact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = artifact
	if evicted, did := c.ring.Push(key); did {
		delete(c.entries, evicted)
	}
}

// Len reports the number of cached artifacts.
func (c *Cache) Len() int {
	return c.ring.Len()
}
