// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// Sentinel errors for the cache/handle core. Callers should use errors.Is
// against these constants rather than matching on message text; the
// messages themselves may gain more context via fmt.Errorf's %w wrapping.
const (
	// ErrInvalidArgument is returned when a public operation is given an
	// argument that violates its contract: graphcache.New returns it for a
	// capacity below 1 or a nil reader.
	ErrInvalidArgument = ConstError("graphcache: invalid argument")

	// ErrIndexOutOfRange is returned by Ptr.FollowEdge when the edge
	// index is not a valid outgoing slot for the node.
	ErrIndexOutOfRange = ConstError("graphcache: edge index out of range")

	// ErrReadFailure is returned when the backing store fails to produce
	// a record for a requested identifier.
	ErrReadFailure = ConstError("graphcache: backing store read failure")

	// ErrLoadOfNull signals an attempt to load the reserved null
	// identifier. Reaching this indicates a bug in the cache, since
	// get_entry must short-circuit before load is ever called with null.
	ErrLoadOfNull = ConstError("graphcache: attempted to load the null identifier")

	// ErrCapacityExhausted is returned when a load is required but every
	// cached entry is pinned, so the eviction policy has no victim to
	// offer.
	ErrCapacityExhausted = ConstError("graphcache: capacity exhausted, no eviction victim available")
)
