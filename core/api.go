// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over Store.
// Policy:
//   - No algorithms here.
//   - Every accessor takes mu for reading; on a frozen Store this is uncontended.

package core

// VertexCount returns V. Complexity: O(1).
func (s *Store) VertexCount() int { return s.v }

// EdgeCount returns E, the number of edge slots. Complexity: O(1).
func (s *Store) EdgeCount() int { return s.e }

// MaxWeight returns the largest |weight| SetEdge accepts: MaxInt64 / V.
// Any path of at most V edges then sums to a value strictly inside int64.
func (s *Store) MaxWeight() int64 { return s.maxWeight }

// Frozen reports whether Freeze has succeeded.
func (s *Store) Frozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frozen
}

// Edge returns the edge in slot i and whether that slot is populated.
// An out-of-range i yields (Edge{}, false).
func (s *Store) Edge(i int) (Edge, bool) {
	if i < 0 || i >= s.e {
		return Edge{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edges[i], s.set[i]
}

// Edges returns a copy of all edge slots in insertion order.
//
// Unpopulated slots appear as zero Edges; callers that need a clean list
// should Freeze first. Complexity: O(E).
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Stats returns a snapshot summary of the Store. Complexity: O(E).
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		VertexCount:    s.v,
		EdgeCount:      s.e,
		PopulatedEdges: s.filled,
		Frozen:         s.frozen,
	}
	for i, e := range s.edges {
		if !s.set[i] {
			continue
		}
		if e.Weight < 0 {
			st.NegativeEdges++
		}
		if e.From == e.To {
			st.SelfLoops++
		}
	}

	return st
}
