package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// TTLCache is a bounded, time-keyed cache. It exists so hot read paths (role
// resolution) stay off the store without smuggling global state into the
// engine: the owning service holds the cache explicitly and invalidates it on
// every mutation of the underlying rows.
type TTLCache[V any] struct {
	cache *ristretto.Cache[string, V]
	ttl   time.Duration
}

// NewTTLCache creates a cache holding at most maxEntries values, each living
// for ttl
func NewTTLCache[V any](maxEntries int64, ttl time.Duration) (*TTLCache[V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &TTLCache[V]{cache: c, ttl: ttl}, nil
}

// Get returns the cached value for key if present and unexpired
func (c *TTLCache[V]) Get(key string) (V, bool) {
	return c.cache.Get(key)
}

// Set stores the value under key for the configured TTL
func (c *TTLCache[V]) Set(key string, value V) {
	c.cache.SetWithTTL(key, value, 1, c.ttl)
}

// Wait blocks until pending sets have been applied. Ristretto admits writes
// asynchronously; reads issued before Wait may miss a just-set key.
func (c *TTLCache[V]) Wait() {
	c.cache.Wait()
}

// Del drops a single key
func (c *TTLCache[V]) Del(key string) {
	c.cache.Del(key)
}

// Clear drops every entry. Used for coarse invalidation where the affected
// key set cannot be enumerated, e.g. organization deactivation.
func (c *TTLCache[V]) Clear() {
	c.cache.Clear()
}

// Close releases the cache resources
func (c *TTLCache[V]) Close() {
	c.cache.Close()
}
