package store

import (
	"sync"

	"games-catalog-service/internal/domain"
)

// CacheBackend keeps the catalog in process memory only. It is the backend
// for restricted environments (serverless, read-only filesystems): writes
// are durable for the lifetime of the process and no longer.
type CacheBackend struct {
	mu     sync.RWMutex
	games  []domain.Game
	loaded bool
}

// NewCacheBackend constructs an empty in-memory backend.
func NewCacheBackend() *CacheBackend {
	return &CacheBackend{}
}

// Name implements Backend.
func (c *CacheBackend) Name() string { return "memory" }

// Load returns the cached collection, reporting false until the first
// Save or Prime.
func (c *CacheBackend) Load() ([]domain.Game, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, false, nil
	}
	return domain.CloneSlice(c.games), true, nil
}

// Save swaps in the new snapshot with a single assignment.
func (c *CacheBackend) Save(games []domain.Game) error {
	snapshot := domain.CloneSlice(games)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.games = snapshot
	c.loaded = true
	return nil
}

// Prime seeds the cache from the bundled snapshot. It never overwrites
// data a Save has already placed: once populated, the cache may be ahead
// of the immutable seed.
func (c *CacheBackend) Prime(games []domain.Game) {
	snapshot := domain.CloneSlice(games)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return
	}
	c.games = snapshot
	c.loaded = true
}
