// Package random implements a random-over-eligible eviction policy, the
// alternative policy spec.md's design notes call out as a legal substitute
// for the default oldest-unpinned policy: any implementation that only ever
// nominates a member of the eligible set is conformant.
package random

import (
	"math/rand"

	"github.com/fantom-foundation/graphcache/policy"
)

// slot is the hint a Policy hands back: an indirection cell holding the
// entry's current position in the backing slice, kept up to date across
// swap-remove operations so a stale hint is never observed.
type slot struct {
	idx int
}

type item[ID comparable] struct {
	id ID
	at *slot
}

// Policy selects a uniformly random member of the eligible set as victim.
// Not safe for concurrent use, matching the single-threaded cache core.
type Policy[ID comparable] struct {
	items []item[ID]
	rng   *rand.Rand
}

// New returns an empty random-over-eligible policy seeded from seed. Use a
// fixed seed for deterministic tests, or seed from a time source for
// production use.
func New[ID comparable](seed int64) *Policy[ID] {
	return &Policy[ID]{rng: rand.New(rand.NewSource(seed))}
}

// OnLoaded does no bookkeeping: a just-loaded entry is about to be pinned.
func (p *Policy[ID]) OnLoaded(ID) {}

// OnUnpinned appends id to the eligible set.
func (p *Policy[ID]) OnUnpinned(id ID) policy.Hint {
	s := &slot{idx: len(p.items)}
	p.items = append(p.items, item[ID]{id: id, at: s})
	return s
}

// OnRepinned removes the entry from the eligible set in O(1) by swapping it
// with the last element and fixing up that element's hint.
func (p *Policy[ID]) OnRepinned(_ ID, hint policy.Hint) {
	s := hint.(*slot)
	p.removeAt(s.idx)
}

// ChooseVictim picks a uniformly random eligible entry, removes it, and
// returns it.
func (p *Policy[ID]) ChooseVictim() (ID, bool) {
	if len(p.items) == 0 {
		var zero ID
		return zero, false
	}
	idx := p.rng.Intn(len(p.items))
	id := p.items[idx].id
	p.removeAt(idx)
	return id, true
}

func (p *Policy[ID]) removeAt(idx int) {
	last := len(p.items) - 1
	p.items[idx] = p.items[last]
	p.items[idx].at.idx = idx
	p.items = p.items[:last]
}

// Len reports the number of identifiers currently eligible for eviction.
func (p *Policy[ID]) Len() int {
	return len(p.items)
}
