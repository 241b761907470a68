package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a bounded TTL cache keyed by school year.
// Readers populate it; writers call Purge after every ledger mutation.
//
// Every Purge starts a new generation. A reader takes the generation before it
// loads from the store and stores its result with SetIfGeneration, so a value
// computed before a mutation is never cached after it.
type Cache[T any] struct {
	lru *expirable.LRU[string, T]

	mu  sync.Mutex
	gen uint64
}

// New creates a cache holding at most size items for ttl each.
// A non-positive size disables caching.
func New[T any](size int, ttl time.Duration) *Cache[T] {
	if size <= 0 {
		return &Cache[T]{}
	}
	return &Cache[T]{lru: expirable.NewLRU[string, T](size, nil, ttl)}
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	if c == nil || c.lru == nil {
		var zero T
		return zero, false
	}
	return c.lru.Get(key)
}

// Generation returns the current generation
func (c *Cache[T]) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Set stores a value in the cache
func (c *Cache[T]) Set(key string, value T) {
	if c == nil || c.lru == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value)
}

// SetIfGeneration stores a value unless the cache was purged since gen was taken.
// It reports whether the value was stored.
func (c *Cache[T]) SetIfGeneration(key string, value T, gen uint64) bool {
	if c == nil || c.lru == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.lru.Add(key, value)
	return true
}

// Purge removes every item and starts a new generation
func (c *Cache[T]) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.lru != nil {
		c.lru.Purge()
	}
}

// Len returns the current number of items in the cache
func (c *Cache[T]) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
