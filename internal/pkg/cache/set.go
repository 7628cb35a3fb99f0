package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// NewSet creates a keyed in-memory cache whose entries expire after ttl unless refreshed.
// A ttl of zero keeps entries until they are deleted.
func NewSet[T any](prefix string, ttl time.Duration) *Set[T] {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Set[T]{
		prefix: prefix + ":",
		ttl:    ttl,
		c:      cache.New(ttl, time.Minute*10),
	}
}

type Set[T any] struct {
	prefix string
	ttl    time.Duration

	c *cache.Cache
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string) (T, error) {
	result, ok := c.c.Get(c.key(key))
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return result.(T), nil
}

func (c *Set[T]) Set(key string, value T) {
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to cache")
	}
	c.c.Set(key, value, c.ttl)
}

// Touch refreshes the expiration of key, reporting whether it still existed. A key
// deleted concurrently stays deleted.
func (c *Set[T]) Touch(key string) bool {
	key = c.key(key)
	v, ok := c.c.Get(key)
	if !ok {
		return false
	}
	return c.c.Replace(key, v, c.ttl) == nil
}

func (c *Set[T]) Delete(key string) {
	c.c.Delete(c.key(key))
}

func (c *Set[T]) Count() int {
	return c.c.ItemCount()
}
