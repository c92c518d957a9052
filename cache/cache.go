package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	cache *cache.Cache
}

// New creates a cache whose items expire after ttl unless refreshed.
func New(ttl time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) SetDefault(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

// Add stores value only if key is not already present. It reports whether
// the value was stored.
func (c *Cache) Add(key string, value interface{}) bool {
	return c.cache.Add(key, value, cache.DefaultExpiration) == nil
}

func (c *Cache) Delete(key string) {
	c.cache.Delete(key)
}

func (c *Cache) ItemCount() int {
	return c.cache.ItemCount()
}
