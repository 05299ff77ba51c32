// Package memstore is an in-memory backing store, grounded on Carmen's
// backend/stock/memory in-memory stock simplified down to a plain
// read/write map: no free list or on-disk metadata, since the cache core
// never deletes or reallocates identifiers through this interface.
package memstore

import (
	"fmt"
	"sync"

	"github.com/fantom-foundation/graphcache/ident"
	"github.com/fantom-foundation/graphcache/store"
)

// Store is a map-backed store.ReadWriter. Safe for concurrent use.
type Store[V any] struct {
	mu      sync.RWMutex
	records map[ident.ID]store.Node[V]
}

// New returns an empty in-memory store.
func New[V any]() *Store[V] {
	return &Store[V]{records: make(map[ident.ID]store.Node[V])}
}

// Read implements store.Reader.
func (s *Store[V]) Read(id ident.ID) (store.Node[V], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.records[id]
	if !ok {
		return store.Node[V]{}, fmt.Errorf("%w: identifier %d", store.ErrNotFound, id)
	}
	return n, nil
}

// Write implements store.Writer.
func (s *Store[V]) Write(id ident.ID, node store.Node[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = node
	return nil
}

var _ store.ReadWriter[int] = (*Store[int])(nil)
