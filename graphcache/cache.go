// Package graphcache implements the bounded in-memory cache over a
// persistent, on-disk graph of nodes, and the move-only Ptr handle type
// clients use to traverse it. See spec.md for the full design; this
// package is a direct realization of spec.md §4.C and §4.D, generalized
// from Carmen's state/mpt node cache (owner-slab + pin-count protocol) and
// its shared.ReadHandle/WriteHandle move-once-release-once idiom.
package graphcache

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/fantom-foundation/graphcache/common"
	"github.com/fantom-foundation/graphcache/ident"
	"github.com/fantom-foundation/graphcache/metrics"
	"github.com/fantom-foundation/graphcache/policy"
	"github.com/fantom-foundation/graphcache/policy/oldest"
	"github.com/fantom-foundation/graphcache/store"
)

// Identifier is the type clients use to name nodes. It is an alias for
// ident.ID so callers never need to import the ident package directly.
type Identifier = ident.ID

// NullID is the reserved identifier denoting "no node".
const NullID = ident.Null

// cacheEntry is the cache's private bookkeeping record for one cached
// identifier (spec.md §3 "Cache entry").
type cacheEntry[V any] struct {
	node     store.Node[V]
	pins     int
	hint     policy.Hint
	eligible bool // true only while pins == 0 and the policy holds hint
}

// Cache is the bounded cache container (spec.md §4.C). It is not safe for
// concurrent use; wrap it with graphcache/concurrent if multiple goroutines
// need access (spec.md §5).
type Cache[V any] struct {
	capacity int
	reader   store.Reader[V]
	pol      policy.Policy[ident.ID]
	metrics  metrics.Metrics
	table    map[ident.ID]*cacheEntry[V]
}

// Option configures a Cache at construction time.
type Option[V any] func(*Cache[V])

// WithPolicy overrides the default oldest-unpinned-first eviction policy.
func WithPolicy[V any](p policy.Policy[ident.ID]) Option[V] {
	return func(c *Cache[V]) { c.pol = p }
}

// WithMetrics attaches an observability sink; the default, also kept when
// m is nil, is a no-op.
func WithMetrics[V any](m metrics.Metrics) Option[V] {
	return func(c *Cache[V]) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New constructs a Cache with the given capacity (must be >= 1) over the
// given backing-store reader.
func New[V any](capacity int, reader store.Reader[V], opts ...Option[V]) (*Cache[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1, got %d", common.ErrInvalidArgument, capacity)
	}
	if reader == nil {
		return nil, fmt.Errorf("%w: backing store reader must not be nil", common.ErrInvalidArgument)
	}
	c := &Cache[V]{
		capacity: capacity,
		reader:   reader,
		pol:      oldest.New[ident.ID](),
		metrics:  metrics.Noop{},
		table:    make(map[ident.ID]*cacheEntry[V], capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RootPtr returns a live handle pinning identifier 0 (spec.md §4.C).
func (c *Cache[V]) RootPtr() (Ptr[V], error) {
	return c.pin(ident.Root)
}

// NullPtr returns the null handle. It never touches the cache (resolves
// spec.md §9 Open Question 2).
func (c *Cache[V]) NullPtr() Ptr[V] {
	return Ptr[V]{id: ident.Null}
}

// Len reports the number of entries currently resident in the cache.
func (c *Cache[V]) Len() int {
	return len(c.table)
}

// Capacity reports the cache's configured maximum size.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Keys returns the identifiers currently resident in the cache, sorted for
// deterministic diagnostics output.
func (c *Cache[V]) Keys() []ident.ID {
	ks := maps.Keys(c.table)
	slices.Sort(ks)
	return ks
}

// PinCount reports the current pin count of id, or 0 if id is not
// resident. Diagnostic only; exercised directly by tests checking
// spec.md's P1/P6 invariants.
func (c *Cache[V]) PinCount(id ident.ID) int {
	e, ok := c.table[id]
	if !ok {
		return 0
	}
	return e.pins
}

// pin implements the handle-construction half of the pin protocol
// (spec.md §4.C "Pin protocol"): get_entry followed immediately by the
// pin increment, with OnRepinned folded into the same step so the
// transient-unpin window spec.md §9 OQ1 describes never becomes
// observable even to diagnostics code running on this cache.
func (c *Cache[V]) pin(id ident.ID) (Ptr[V], error) {
	if id.IsNull() {
		return c.NullPtr(), nil
	}
	e, hit, err := c.getEntry(id)
	if err != nil {
		return Ptr[V]{}, err
	}
	if hit {
		c.metrics.Hit()
	}
	if e.pins == 0 && e.eligible {
		c.pol.OnRepinned(id, e.hint)
		e.hint = nil
		e.eligible = false
	}
	e.pins++
	return Ptr[V]{id: id, cache: c, entry: e}, nil
}

// getEntry resolves id to its cache entry, loading it on a miss. It
// returns hit=true iff the entry was already resident (spec.md §4.C
// get_entry, split from the pin-count mutation that pin() performs).
func (c *Cache[V]) getEntry(id ident.ID) (e *cacheEntry[V], hit bool, err error) {
	if e, ok := c.table[id]; ok {
		return e, true, nil
	}
	e, err = c.load(id)
	return e, false, err
}

// load inserts a new entry for id, evicting a victim first if the cache is
// at capacity (spec.md §4.C load).
func (c *Cache[V]) load(id ident.ID) (*cacheEntry[V], error) {
	if id.IsNull() {
		return nil, common.ErrLoadOfNull
	}
	if len(c.table) >= c.capacity {
		victim, ok := c.pol.ChooseVictim()
		if !ok {
			return nil, fmt.Errorf("%w: requested identifier %d", common.ErrCapacityExhausted, id)
		}
		delete(c.table, victim)
		c.metrics.Eviction()
	}

	node, err := c.reader.Read(id)
	if err != nil {
		return nil, fmt.Errorf("%w: identifier %d: %v", common.ErrReadFailure, id, err)
	}

	c.pol.OnLoaded(id)
	e := &cacheEntry[V]{node: node}
	c.table[id] = e
	c.metrics.Miss()
	c.metrics.Size(len(c.table))
	return e, nil
}

// release implements the handle-destruction half of the pin protocol
// (spec.md §4.C release, §4.D "Destroy"). It is infallible: callers must
// never observe an error from the handle destructor path (spec.md §7).
func (c *Cache[V]) release(id ident.ID) {
	e, ok := c.table[id]
	if !ok {
		return
	}
	e.pins--
	if e.pins == 0 {
		e.hint = c.pol.OnUnpinned(id)
		e.eligible = true
	}
}
