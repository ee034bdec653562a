// SPDX-License-Identifier: MIT
// Package core: Store, Edge, options and sentinel errors.
//
// This file declares the data types only. Mutators live in store.go,
// read-only facade methods in api.go.

package core

import (
	"errors"
	"sync"
)

// DefaultMaxVertices is the vertex capacity used when no WithMaxVertices
// option is given. A V×V int64 cache at this size stays under 150 MiB.
const DefaultMaxVertices = 4096

// Sentinel errors for Store construction and population.
var (
	// ErrInvalidSize indicates a non-positive vertex count or a negative edge count.
	ErrInvalidSize = errors.New("core: invalid store size")

	// ErrCapacityExceeded indicates the requested vertex count is above the
	// configured maximum.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrInvalidIndex indicates an edge slot or an endpoint outside its range.
	ErrInvalidIndex = errors.New("core: index out of range")

	// ErrFrozen indicates a mutation was attempted on a frozen Store.
	ErrFrozen = errors.New("core: store is frozen")

	// ErrUnpopulatedEdge indicates Freeze found an edge slot that was never set.
	ErrUnpopulatedEdge = errors.New("core: edge slot not populated")

	// ErrInvalidWeight indicates |weight| is above MaxWeight for the Store.
	ErrInvalidWeight = errors.New("core: weight out of range")
)

// Edge is a directed, weighted connection From → To.
//
// Weight is signed; negative weights are legal and are what make
// Bellman-Ford (rather than Dijkstra) necessary. |Weight| is bounded by
// Store.MaxWeight so that no path of up to V edges overflows int64.
type Edge struct {
	From   int   // source vertex index
	To     int   // destination vertex index
	Weight int64 // signed cost
}

// StoreOption configures a Store before allocation.
type StoreOption func(*storeConfig)

type storeConfig struct {
	maxVertices int
}

// WithMaxVertices overrides DefaultMaxVertices. Values < 1 are ignored.
func WithMaxVertices(n int) StoreOption {
	return func(c *storeConfig) {
		if n > 0 {
			c.maxVertices = n
		}
	}
}

// Store is the immutable-after-freeze graph container.
//
// mu guards edges, set and frozen. V and E never change after NewStore.
type Store struct {
	mu sync.RWMutex

	v         int   // vertex count
	e         int   // edge slot count
	maxWeight int64 // MaxInt64 / v

	edges  []Edge // slot i → edge, insertion order
	set    []bool // slot i populated?
	filled int    // number of populated slots
	frozen bool
}

// Stats is a point-in-time summary of a Store.
type Stats struct {
	VertexCount    int
	EdgeCount      int
	PopulatedEdges int
	NegativeEdges  int
	SelfLoops      int
	Frozen         bool
}
