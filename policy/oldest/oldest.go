// Package oldest implements the default eviction policy: oldest-unpinned
// first. It maintains a doubly-linked sequence of identifiers in the order
// they became unpinned and always nominates the front of that sequence.
//
// The list shape mirrors Carmen's common.LruCache intrusive list, but here
// the list holds only the unpinned subset rather than every cached entry -
// pinned entries never enter it, so a victim is always safe to evict.
package oldest

import "github.com/fantom-foundation/graphcache/policy"

// node is one slot in the unpinned sequence.
type node[ID comparable] struct {
	id         ID
	prev, next *node[ID]
}

// Policy is the oldest-unpinned-first eviction policy.
type Policy[ID comparable] struct {
	root node[ID] // sentinel; root.next is the oldest entry, root.prev the newest
}

// New returns an empty oldest-unpinned-first policy.
func New[ID comparable]() *Policy[ID] {
	p := &Policy[ID]{}
	p.root.next = &p.root
	p.root.prev = &p.root
	return p
}

// OnLoaded does no bookkeeping: a just-loaded entry is about to be pinned.
func (p *Policy[ID]) OnLoaded(ID) {}

// OnUnpinned appends id to the back of the sequence (newest-unpinned) and
// returns the node as the hint for O(1) removal later.
func (p *Policy[ID]) OnUnpinned(id ID) policy.Hint {
	n := &node[ID]{id: id}
	last := p.root.prev
	last.next = n
	n.prev = last
	n.next = &p.root
	p.root.prev = n
	return n
}

// OnRepinned removes the entry's node from the sequence using hint.
func (p *Policy[ID]) OnRepinned(_ ID, hint policy.Hint) {
	n := hint.(*node[ID])
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

// ChooseVictim pops and returns the front of the sequence: the entry that
// has been unpinned the longest.
func (p *Policy[ID]) ChooseVictim() (ID, bool) {
	if p.root.next == &p.root {
		var zero ID
		return zero, false
	}
	n := p.root.next
	n.next.prev = &p.root
	p.root.next = n.next
	n.prev, n.next = nil, nil
	return n.id, true
}

// Len reports the number of identifiers currently eligible for eviction.
func (p *Policy[ID]) Len() int {
	n := 0
	for cur := p.root.next; cur != &p.root; cur = cur.next {
		n++
	}
	return n
}
