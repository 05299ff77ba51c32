package concurrent

import (
	"sync"

	"github.com/fantom-foundation/graphcache/graphcache"
)

// Cache serializes access to a graphcache.Cache behind a mutex. Every
// operation that mutates pin counts or eviction-policy state - RootPtr,
// FollowEdge, Close - takes the lock; NullPtr never touches the
// underlying cache and needs none. Use concurrent.NewCoalescingReader to
// also deduplicate concurrent cold loads of the same identifier.
//
// Handles returned by a Cache are themselves still single-threaded: call
// FollowEdge/Close on a given Ptr through this wrapper, not concurrently
// from multiple goroutines on the same Ptr value.
type Cache[V any] struct {
	mu    sync.Mutex
	inner *graphcache.Cache[V]
}

// Wrap returns a concurrency-safe facade over inner.
func Wrap[V any](inner *graphcache.Cache[V]) *Cache[V] {
	return &Cache[V]{inner: inner}
}

// RootPtr returns a live handle pinning the root identifier.
func (c *Cache[V]) RootPtr() (graphcache.Ptr[V], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RootPtr()
}

// NullPtr returns the null handle without touching the cache or its lock.
func (c *Cache[V]) NullPtr() graphcache.Ptr[V] {
	return c.inner.NullPtr()
}

// FollowEdge follows p's i-th outgoing edge under the cache's lock.
func (c *Cache[V]) FollowEdge(p *graphcache.Ptr[V], i int) (graphcache.Ptr[V], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return p.FollowEdge(i)
}

// Close releases p's pin under the cache's lock.
func (c *Cache[V]) Close(p *graphcache.Ptr[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.Close()
}

// Len reports the number of resident entries under the cache's lock.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}
