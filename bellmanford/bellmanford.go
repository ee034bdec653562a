// SPDX-License-Identifier: MIT
// Package bellmanford: one-shot relaxation (BellmanFord), the runner and
// saturating arithmetic.

package bellmanford

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/roadpath/core"
)

// BellmanFord computes shortest distances from source over g without any
// caching. g must be frozen or at least fully populated; unpopulated slots are
// read as zero edges 0→0 of weight 0, which never relax anything.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, V) (ErrInvalidSource).
//
// ctx is checked between relaxation passes; cancellation returns ctx.Err().
//
// Complexity: Time O(V·E), Space O(V).
func BellmanFord(ctx context.Context, g *core.Store, source int) (Distances, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := checkSource(source, g.VertexCount()); err != nil {
		return nil, err
	}

	r := &runner{
		edges:  g.Edges(),
		v:      g.VertexCount(),
		source: source,
	}
	r.init()
	if err := r.process(ctx); err != nil {
		return nil, err
	}
	if err := r.detectCycle(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

func checkSource(source, v int) error {
	if source < 0 || source >= v {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidSource, source, v)
	}

	return nil
}

// runner holds the mutable state of one relaxation.
type runner struct {
	edges  []core.Edge // read-only snapshot, Store order
	v      int         // vertex count
	source int
	dist   Distances
	passes int // completed relaxation passes
}

// init sets every distance to Unreachable and the source to 0.
func (r *runner) init() {
	r.dist = make(Distances, r.v)
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[r.source] = 0
}

// process performs exactly V-1 relaxation passes.
func (r *runner) process(ctx context.Context) error {
	for r.passes = 0; r.passes < r.v-1; r.passes++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.pass(); err != nil {
			return err
		}
	}

	return nil
}

// pass relaxes every edge once, in Store order. A candidate below
// math.MinInt64 can only come from a negative cycle (core bounds |w| so that
// V edges never overflow) and ends the run.
func (r *runner) pass() error {
	for i, e := range r.edges {
		nd, ok, under := relax(r.dist[e.From], e.Weight, r.dist[e.To])
		if under {
			return r.cycleErr(i, e)
		}
		if ok {
			r.dist[e.To] = nd
		}
	}

	return nil
}

// detectCycle scans the edges once more after V-1 passes. Any edge that
// still relaxes lies on, or downstream of, a reachable negative cycle.
func (r *runner) detectCycle() error {
	for i, e := range r.edges {
		if _, ok, under := relax(r.dist[e.From], e.Weight, r.dist[e.To]); ok || under {
			return r.cycleErr(i, e)
		}
	}

	return nil
}

func (r *runner) cycleErr(i int, e core.Edge) error {
	return fmt.Errorf("%w: source %d, edge #%d %d→%d weight=%d",
		ErrNegativeCycle, r.source, i, e.From, e.To, e.Weight)
}

// relax returns the candidate du+w, whether it improves dv, and whether the
// true sum is below math.MinInt64. An Unreachable du never relaxes.
func relax(du, w, dv int64) (int64, bool, bool) {
	if du == Unreachable {
		return 0, false, false
	}
	nd, under := saturatingAdd(du, w)

	return nd, !under && nd < dv, under
}

// saturatingAdd clamps a+b to [math.MinInt64, Unreachable] and reports a
// negative overflow.
func saturatingAdd(a, b int64) (int64, bool) {
	s := a + b
	switch {
	case b > 0 && s < a:
		return Unreachable, false
	case b < 0 && s > a:
		return math.MinInt64, true
	}

	return s, false
}
