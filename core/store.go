// SPDX-License-Identifier: MIT
// Package core: Store construction and the population phase.
//
// All mutators take mu exclusively; validation happens before the lock is
// taken where it does not depend on Store state.
package core

import (
	"fmt"
	"math"
)

// NewStore allocates a Store with v vertices and e unpopulated edge slots.
//
// Returns ErrInvalidSize if v < 1 or e < 0, and ErrCapacityExceeded if v is
// above the configured maximum (DefaultMaxVertices or WithMaxVertices).
// Complexity: O(E).
func NewStore(v, e int, opts ...StoreOption) (*Store, error) {
	cfg := storeConfig{maxVertices: DefaultMaxVertices}
	for _, opt := range opts {
		opt(&cfg)
	}

	if v < 1 || e < 0 {
		return nil, fmt.Errorf("%w: V=%d E=%d", ErrInvalidSize, v, e)
	}
	if v > cfg.maxVertices {
		return nil, fmt.Errorf("%w: V=%d max=%d", ErrCapacityExceeded, v, cfg.maxVertices)
	}

	return &Store{
		v:         v,
		e:         e,
		maxWeight: math.MaxInt64 / int64(v),
		edges:     make([]Edge, e),
		set:       make([]bool, e),
	}, nil
}

// SetEdge assigns slot i to the edge from → to with the given weight.
//
// A slot may be reassigned any number of times until Freeze. No duplicate
// check is made: parallel edges and self-loops are legal.
//
// Returns ErrInvalidIndex when i ∉ [0,E) or an endpoint ∉ [0,V),
// ErrInvalidWeight when |weight| > MaxWeight, and ErrFrozen once the Store
// is sealed.
// Complexity: O(1).
func (s *Store) SetEdge(i, from, to int, weight int64) error {
	if i < 0 || i >= s.e {
		return fmt.Errorf("%w: edge slot %d not in [0,%d)", ErrInvalidIndex, i, s.e)
	}
	if from < 0 || from >= s.v {
		return fmt.Errorf("%w: edge %d source %d not in [0,%d)", ErrInvalidIndex, i, from, s.v)
	}
	if to < 0 || to >= s.v {
		return fmt.Errorf("%w: edge %d destination %d not in [0,%d)", ErrInvalidIndex, i, to, s.v)
	}
	if weight > s.maxWeight || weight < -s.maxWeight {
		return fmt.Errorf("%w: edge %d weight %d, |w| must be <= %d", ErrInvalidWeight, i, weight, s.maxWeight)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	if !s.set[i] {
		s.set[i] = true
		s.filled++
	}
	s.edges[i] = Edge{From: from, To: to, Weight: weight}

	return nil
}

// Freeze seals the Store. Every slot must have been populated; otherwise
// ErrUnpopulatedEdge is returned (naming the first empty slot) and the Store
// stays open. Freezing a frozen Store is a no-op.
// Complexity: O(E) on the failure path, O(1) otherwise.
func (s *Store) Freeze() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return nil
	}
	if s.filled != s.e {
		for i, ok := range s.set {
			if !ok {
				return fmt.Errorf("%w: slot %d of %d", ErrUnpopulatedEdge, i, s.e)
			}
		}
	}
	s.frozen = true

	return nil
}

// FromEdges builds and freezes a Store with v vertices holding edges in the
// given order. It is the one-shot form of NewStore + SetEdge... + Freeze.
func FromEdges(v int, edges []Edge, opts ...StoreOption) (*Store, error) {
	s, err := NewStore(v, len(edges), opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = s.SetEdge(i, e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	if err = s.Freeze(); err != nil {
		return nil, err
	}

	return s, nil
}
