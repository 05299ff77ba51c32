// Package policy defines the eviction-policy contract shared by the cache
// container: which currently-cached entries are eligible for eviction, and
// which one to nominate when a victim is needed.
//
// A policy only ever sees the unpinned subset of a cache's entries. Pinned
// entries are invisible to it, which is what makes it impossible for a
// policy to nominate a live entry as a victim.
package policy

// Hint is the opaque token a Policy attaches to an entry when it becomes
// unpinned, and consumes again on re-pin or eviction. It lets a policy
// locate its own bookkeeping for that entry in O(1) without the cache
// needing to know anything about the policy's internal structure.
type Hint any

// Policy tracks the unpinned subset of a cache's entries and selects
// eviction victims among them. ID is the cache's key type; implementations
// are expected to be simple, non-thread-safe structures, matching the
// single-threaded cache core they serve.
type Policy[ID comparable] interface {
	// OnLoaded is called right after a new entry is inserted into the
	// cache. Its pin count is about to become 1 (the caller is
	// constructing the handle that will pin it), so the policy must not
	// record the entry as eligible yet.
	OnLoaded(id ID)

	// OnUnpinned is called when an entry's pin count transitions from 1
	// to 0. The entry becomes eviction-eligible; the returned hint must
	// be presented on any later OnRepinned or implicit removal via
	// ChooseVictim.
	OnUnpinned(id ID) Hint

	// OnRepinned is called when an entry's pin count transitions from 0
	// back to a positive value. The entry is removed from the eligible
	// set, using hint for O(1) removal.
	OnRepinned(id ID, hint Hint)

	// ChooseVictim returns and removes one identifier from the eligible
	// set. When the eligible set is empty it removes nothing and returns
	// ok == false; the cache relies on this to detect capacity exhaustion.
	ChooseVictim() (id ID, ok bool)
}
