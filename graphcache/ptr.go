package graphcache

import (
	"fmt"

	"github.com/fantom-foundation/graphcache/common"
	"github.com/fantom-foundation/graphcache/ident"
)

// Ptr is the move-only handle described in spec.md §3/§4.D. It is either
// null (no references, identifier null) or live (references its cache and
// a pinned entry). Go has neither destructors nor a borrow checker, so the
// move-only and pin/unpin discipline is expressed the way Carmen's
// shared.ReadHandle/WriteHandle express single-use capability handles: a
// small value type with an explicit Close (destroy) and Move (move-out).
//
// Ptr must never be copied by assignment once live; only Move() transfers
// ownership. This is a documented discipline, not one the type system
// enforces - the same tradeoff shared.ReadHandle/WriteHandle make.
type Ptr[V any] struct {
	id    ident.ID
	cache *Cache[V]
	entry *cacheEntry[V]
}

// Valid reports whether p is live (spec.md §4.D "bool-cast").
func (p *Ptr[V]) Valid() bool {
	return p.cache != nil
}

// Id returns p's identifier. It is ident.Null for the null handle.
func (p *Ptr[V]) Id() ident.ID {
	return p.id
}

// Value returns the payload of the node p refers to (spec.md §4.D
// "deref_value"). Precondition: p must be live; calling Value on a null
// Ptr is a programming error.
func (p *Ptr[V]) Value() V {
	if !p.Valid() {
		panic("graphcache: Value called on a null Ptr")
	}
	return p.entry.node.Value
}

// FollowEdge reads the i-th outgoing identifier from p's node and returns
// a new handle to it (spec.md §4.D "follow_edge"). If the outgoing
// identifier is null, the returned handle is null. Precondition: p must be
// live; calling FollowEdge on a null Ptr is a programming error.
func (p *Ptr[V]) FollowEdge(i int) (Ptr[V], error) {
	if !p.Valid() {
		panic("graphcache: FollowEdge called on a null Ptr")
	}
	edges := p.entry.node.Edges
	if i < 0 || i >= len(edges) {
		return Ptr[V]{}, fmt.Errorf("%w: index %d, arity %d", common.ErrIndexOutOfRange, i, len(edges))
	}
	return p.cache.pin(edges[i])
}

// Move transfers ownership out of p into the returned value. p becomes the
// null handle (spec.md §4.D "Move-construct / move-assign").
func (p *Ptr[V]) Move() Ptr[V] {
	out := *p
	*p = Ptr[V]{}
	return out
}

// Close destroys the handle: if live, it releases the pin on its entry
// (spec.md §4.D "Destroy"). Close on a null Ptr is a no-op. Close is
// idempotent: a Ptr zeroes itself after closing, so calling Close again is
// safe.
func (p *Ptr[V]) Close() {
	if !p.Valid() {
		return
	}
	p.cache.release(p.id)
	*p = Ptr[V]{}
}
