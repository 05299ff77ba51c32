package store

import "github.com/fantom-foundation/graphcache/common"

// Sentinel errors returned by store implementations. Both are read
// failures from the cache core's point of view (spec.md §7).
const (
	// ErrNotFound is returned when no record exists for an identifier.
	ErrNotFound = common.ConstError("store: no record for identifier")

	// ErrCorrupt is returned when a record exists but failed an
	// integrity check (see store/checksum).
	ErrCorrupt = common.ConstError("store: record failed integrity check")
)
