// SPDX-License-Identifier: MIT
// Package bellmanford: the flat V×V memoization table behind Engine.

package bellmanford

// cache is the per-engine memoization table: V rows of V distances stored
// flat, plus a populated flag per cell and a state per row.
//
// A row is valid iff every cell in it is populated. The engine writes rows
// whole, so this only matters as a guard: a partially populated row is never
// returned. Callers hold the engine lock.
type cache struct {
	v     int
	dist  []int64     // v*v, row-major by source
	known []bool      // v*v, cell populated?
	state []SlotState // per source
}

func newCache(v int) *cache {
	c := &cache{
		v:     v,
		dist:  make([]int64, v*v),
		known: make([]bool, v*v),
		state: make([]SlotState, v),
	}
	c.reset()

	return c
}

// reset marks every cell uncomputed.
func (c *cache) reset() {
	for i := range c.dist {
		c.dist[i] = Unreachable
		c.known[i] = false
	}
	for i := range c.state {
		c.state[i] = Uncomputed
	}
}

// row returns a copy of the source row when it is fully populated.
func (c *cache) row(source int) (Distances, bool) {
	lo, hi := source*c.v, (source+1)*c.v
	for _, ok := range c.known[lo:hi] {
		if !ok {
			return nil, false
		}
	}
	out := make(Distances, c.v)
	copy(out, c.dist[lo:hi])

	return out, true
}

// store writes a complete row and marks it Computed.
func (c *cache) store(source int, d Distances) {
	lo := source * c.v
	copy(c.dist[lo:lo+c.v], d)
	for i := lo; i < lo+c.v; i++ {
		c.known[i] = true
	}
	c.state[source] = Computed
}
