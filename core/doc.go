// Package core provides the Store: a fixed-capacity, index-addressed container
// of vertices and weighted directed edges that is built once and then frozen.
//
// The Store G = (V, E) is deliberately minimal:
//
//   - Vertices are the integers 0..V-1. Display names (city labels and the
//     like) are owned by the caller; the Store never sees them.
//   - Edges live in E numbered slots. Each slot holds (From, To, Weight)
//     where Weight is a signed int64 and may be negative.
//   - Parallel edges and self-loops are permitted.
//   - Slot order is insertion order and is preserved by every accessor, so
//     algorithms that sweep the edge list see a deterministic sequence.
//
// Lifecycle:
//
//	NewStore(V, E)        // allocate; every slot starts unpopulated
//	SetEdge(i, u, v, w)   // populate slots, in any order, any number of times
//	Freeze()              // seal: all slots must be populated
//	Edges(), Edge(i), ... // read-only from here on
//
// Once frozen, SetEdge returns ErrFrozen and the Store is safe for any number
// of concurrent readers. Algorithms that memoize results per Store (see
// package bellmanford) rely on this: a frozen topology never changes under a
// cache.
//
// Capacity:
//
// The vertex count is bounded by DefaultMaxVertices unless overridden with
// WithMaxVertices. The bound exists because per-source caches built on top of
// a Store are V×V; it is a configuration knob, not a compile-time array size.
//
// Errors:
//
//	ErrInvalidSize      - V < 1 or E < 0.
//	ErrCapacityExceeded - V exceeds the configured maximum.
//	ErrInvalidIndex     - slot or endpoint index out of range.
//	ErrInvalidWeight    - |weight| above MaxWeight (MaxInt64 / V).
//	ErrFrozen           - SetEdge after Freeze.
//	ErrUnpopulatedEdge  - Freeze while some slot was never set.
package core
