// Package ident defines the identifier type shared by the store, policy,
// and graphcache packages: a persistent index into the backing store.
package ident

// ID is a signed integer index into the backing store. It is the
// identifier type threaded through the policy, store, and cache layers.
type ID int64

// Null is the reserved identifier denoting "no node".
const Null ID = -1

// Root is the identifier conventionally denoting the root of the graph.
const Root ID = 0

// IsNull reports whether id is the reserved null identifier.
func (id ID) IsNull() bool {
	return id == Null
}
