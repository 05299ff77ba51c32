// Package store defines the backing-store reader contract the cache
// core treats as an external collaborator (spec.md §4.A, §6): given an
// identifier, produce the node record or a read error. The wire/on-disk
// encoding is each implementation's concern, not the cache's.
package store

import "github.com/fantom-foundation/graphcache/ident"

// Node is the persistent, stored form of a graph node: a payload value and
// its outgoing identifiers. Edges is a slice, so the arity is not fixed at
// compile time and nothing checks that nodes share one edge count; the
// cache validates edge indexes against the length of each node's Edges.
type Node[V any] struct {
	Value V
	Edges []ident.ID
}

// Reader is given an identifier and returns the node record or a read
// error. Implementations are assumed referentially transparent: reading
// the same identifier twice yields the same record.
type Reader[V any] interface {
	Read(id ident.ID) (Node[V], error)
}

// Writer populates a backing store out of band. It is never reachable
// from the cache or handle API: the core has no write path (spec.md §1).
type Writer[V any] interface {
	Write(id ident.ID, node Node[V]) error
}

// ReadWriter combines Reader and Writer, the shape the in-memory and
// leveldb-backed stores both implement for fixture setup and example use.
type ReadWriter[V any] interface {
	Reader[V]
	Writer[V]
}
