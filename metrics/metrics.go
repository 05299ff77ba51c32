// Package metrics defines the cache's observability hooks, grounded on
// shardcache's cache.Metrics interface and its "nil Metrics => Noop"
// default convention.
package metrics

// Metrics exposes cache-level observability hooks. Implementations must
// be safe to call from whatever goroutine the cache itself is called from
// (the core cache is single-threaded, but a concurrent.Cache wrapper may
// call these while holding its own mutex).
type Metrics interface {
	// Hit is called when a requested identifier was already cached.
	Hit()
	// Miss is called when a requested identifier had to be loaded.
	Miss()
	// Eviction is called when an entry is evicted to make room for a load.
	Eviction()
	// Size reports the current number of resident entries.
	Size(entries int)
}

// Noop is the zero-cost default Metrics implementation.
type Noop struct{}

func (Noop) Hit()      {}
func (Noop) Miss()     {}
func (Noop) Eviction() {}
func (Noop) Size(int)  {}

var _ Metrics = Noop{}
