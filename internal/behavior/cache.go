package behavior

import "sync"

// Cache holds the platform default configuration after first load so the
// prompt-build hot path does not hit storage on every conversation turn.
// It is an explicit object owned by the store, never package-level state.
//
// Invalidate must be called after any administrator write to the default
// config; reads between the write and the invalidation may be stale.
// Tenant overrides are never cached here.
type Cache struct {
	mu     sync.RWMutex
	cfg    Config
	loaded bool
}

// NewCache creates an empty Cache; the first Get populates it.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached configuration, invoking load to populate the
// cache on first use. A load that reports ok=false still serves its
// result but is not cached, so a transient failure does not pin a
// fallback until the next Invalidate. Concurrent first calls may each
// invoke load; the loader is a read with stable results, so
// last-write-wins is harmless.
func (c *Cache) Get(load func() (Config, bool)) Config {
	c.mu.RLock()
	if c.loaded {
		cfg := c.cfg
		c.mu.RUnlock()
		return cfg.Clone()
	}
	c.mu.RUnlock()

	cfg, ok := load()
	if !ok {
		return cfg.Clone()
	}

	c.mu.Lock()
	c.cfg = cfg
	c.loaded = true
	c.mu.Unlock()

	return cfg.Clone()
}

// Invalidate clears the cached configuration so the next Get reloads it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.cfg = Config{}
	c.mu.Unlock()
}
