// Package bellmanford_test validates the one-shot BellmanFord function:
// input validation, the concrete city scenarios, negative-cycle detection,
// unreachable vertices, saturation and agreement with a Floyd–Warshall oracle.
package bellmanford_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/bellmanford"
	"github.com/katalvlaran/roadpath/core"
)

const inf = bellmanford.Unreachable

// mustStore builds a frozen store or fails the test.
func mustStore(t *testing.T, v int, edges ...core.Edge) *core.Store {
	t.Helper()
	g, err := core.FromEdges(v, edges)
	require.NoError(t, err)

	return g
}

// edge is a compact core.Edge constructor for tables.
func edge(from, to int, w int64) core.Edge {
	return core.Edge{From: from, To: to, Weight: w}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestBellmanFord_NilGraph(t *testing.T) {
	_, err := bellmanford.BellmanFord(context.Background(), nil, 0)
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)
}

func TestBellmanFord_InvalidSource(t *testing.T) {
	g := mustStore(t, 2, edge(0, 1, 3))
	for _, src := range []int{-1, 2, 100} {
		_, err := bellmanford.BellmanFord(context.Background(), g, src)
		assert.ErrorIs(t, err, bellmanford.ErrInvalidSource, "source %d", src)
	}
}

func TestBellmanFord_CancelledContext(t *testing.T) {
	g := mustStore(t, 3, edge(0, 1, 1), edge(1, 2, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bellmanford.BellmanFord(ctx, g, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Concrete city scenarios
// ------------------------------------------------------------------------

func TestBellmanFord_Scenarios(t *testing.T) {
	const A, B, C = 0, 1, 2

	cases := []struct {
		name   string
		v      int
		edges  []core.Edge
		source int
		want   bellmanford.Distances
	}{
		{
			name:   "negative edge beats direct road",
			v:      3,
			edges:  []core.Edge{edge(A, B, 4), edge(A, C, 5), edge(B, C, -2)},
			source: A,
			want:   bellmanford.Distances{0, 4, 2},
		},
		{
			name:   "one-way road leaves origin unreachable",
			v:      2,
			edges:  []core.Edge{edge(A, B, 3)},
			source: B,
			want:   bellmanford.Distances{inf, 0},
		},
		{
			name:   "single city",
			v:      1,
			source: A,
			want:   bellmanford.Distances{0},
		},
		{
			name:   "parallel roads keep the cheaper",
			v:      2,
			edges:  []core.Edge{edge(A, B, 9), edge(A, B, 2), edge(A, B, 5)},
			source: A,
			want:   bellmanford.Distances{0, 2},
		},
		{
			name:   "non-negative self loop is harmless",
			v:      2,
			edges:  []core.Edge{edge(A, A, 0), edge(A, B, 1), edge(B, B, 7)},
			source: A,
			want:   bellmanford.Distances{0, 1},
		},
		{
			name:   "reverse edge order still converges",
			v:      4,
			edges:  []core.Edge{edge(2, 3, 1), edge(1, 2, 1), edge(0, 1, 1)},
			source: 0,
			want:   bellmanford.Distances{0, 1, 2, 3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustStore(t, tc.v, tc.edges...)
			got, err := bellmanford.BellmanFord(context.Background(), g, tc.source)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("distances mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 3. Negative cycles
// ------------------------------------------------------------------------

func TestBellmanFord_NegativeCycle(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		edges []core.Edge
	}{
		{"two-city loop sums to -1", 2, []core.Edge{edge(0, 1, 1), edge(1, 0, -2)}},
		{"negative self loop", 1, []core.Edge{edge(0, 0, -1)}},
		{"cycle downstream of source", 4, []core.Edge{
			edge(0, 1, 5), edge(1, 2, 1), edge(2, 3, -4), edge(3, 1, 2),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustStore(t, tc.v, tc.edges...)
			d, err := bellmanford.BellmanFord(context.Background(), g, 0)
			assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
			assert.Nil(t, d, "no distance vector may accompany a negative cycle")
		})
	}
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	// 0→1 is clean; 2⇄3 is a negative loop nobody reaches from 0.
	g := mustStore(t, 4, edge(0, 1, 2), edge(2, 3, 1), edge(3, 2, -5))

	d, err := bellmanford.BellmanFord(context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, bellmanford.Distances{0, 2, inf, inf}, d)

	_, err = bellmanford.BellmanFord(context.Background(), g, 2)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_ZeroWeightCycleIsFine(t *testing.T) {
	g := mustStore(t, 3, edge(0, 1, 3), edge(1, 2, -1), edge(2, 1, 1))

	d, err := bellmanford.BellmanFord(context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, bellmanford.Distances{0, 3, 2}, d)
}

// ------------------------------------------------------------------------
// 4. Saturation
// ------------------------------------------------------------------------

func TestBellmanFord_BoundedWeightsStayFinite(t *testing.T) {
	// Longest allowed chain at the largest allowed weight: no wrap, no
	// collision with Unreachable.
	probe, err := core.NewStore(3, 0)
	require.NoError(t, err)
	w := probe.MaxWeight()
	g := mustStore(t, 3, edge(0, 1, w), edge(1, 2, w))

	d, err := bellmanford.BellmanFord(context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2*w, d[2])
	assert.True(t, d.Reachable(2))
	assert.Less(t, d[2], inf)
}

func TestBellmanFord_ExtremeWeightsRejectedByStore(t *testing.T) {
	_, err := core.FromEdges(2, []core.Edge{edge(0, 1, math.MinInt64), edge(1, 0, -1)})
	assert.ErrorIs(t, err, core.ErrInvalidWeight)

	_, err = core.FromEdges(2, []core.Edge{edge(0, 1, math.MaxInt64)})
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestBellmanFord_CycleDrivingDistancesToTheFloor(t *testing.T) {
	// Each lap of 0→1→2→0 subtracts 3·MaxWeight, which underflows int64 on
	// the second pass. It must still be reported, never clamped into a
	// "valid" vector.
	probe, err := core.NewStore(3, 0)
	require.NoError(t, err)
	w := -probe.MaxWeight()
	g := mustStore(t, 3, edge(0, 1, w), edge(1, 2, w), edge(2, 0, w))

	for src := 0; src < 3; src++ {
		d, err := bellmanford.BellmanFord(context.Background(), g, src)
		assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle, "source %d", src)
		assert.Nil(t, d)
	}
}

// ------------------------------------------------------------------------
// 5. Properties against a Floyd–Warshall oracle
// ------------------------------------------------------------------------

// randomDAG builds a graph whose edges only go from lower to higher index,
// so it has no cycles at all while still carrying negative weights.
func randomDAG(t *testing.T, r *rand.Rand, v, e int) *core.Store {
	t.Helper()
	edges := make([]core.Edge, 0, e)
	for len(edges) < e {
		u, w := r.Intn(v), r.Intn(v)
		if u == w {
			continue
		}
		if u > w {
			u, w = w, u
		}
		edges = append(edges, edge(u, w, int64(r.Intn(41)-20)))
	}

	return mustStore(t, v, edges...)
}

// floydWarshall is an independent all-pairs oracle.
func floydWarshall(g *core.Store) [][]int64 {
	v := g.VertexCount()
	d := make([][]int64, v)
	for i := range d {
		d[i] = make([]int64, v)
		for j := range d[i] {
			d[i][j] = inf
		}
		d[i][i] = 0
	}
	for _, e := range g.Edges() {
		if e.Weight < d[e.From][e.To] {
			d[e.From][e.To] = e.Weight
		}
	}
	for k := 0; k < v; k++ {
		for i := 0; i < v; i++ {
			if d[i][k] == inf {
				continue
			}
			for j := 0; j < v; j++ {
				if d[k][j] == inf {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}

func TestBellmanFord_MatchesOracleOnRandomDAGs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		v := 2 + r.Intn(12)
		g := randomDAG(t, r, v, r.Intn(3*v))
		oracle := floydWarshall(g)

		for src := 0; src < v; src++ {
			d, err := bellmanford.BellmanFord(context.Background(), g, src)
			require.NoError(t, err)

			// distance[source] == 0.
			assert.Zero(t, d[src])

			// Agreement with the oracle, including Unreachable.
			if diff := cmp.Diff(bellmanford.Distances(oracle[src]), d); diff != "" {
				t.Fatalf("trial %d src %d (-oracle +got):\n%s", trial, src, diff)
			}

			// Fixed point: no edge out of a reachable vertex can improve its head.
			for _, e := range g.Edges() {
				if d.Reachable(e.From) {
					assert.LessOrEqual(t, d[e.To], d[e.From]+e.Weight)
				}
			}
		}
	}
}

// randomGraph builds a graph with arbitrary direction, so cycles (negative
// ones included) are common.
func randomGraph(t *testing.T, r *rand.Rand, v, e int) *core.Store {
	t.Helper()
	edges := make([]core.Edge, e)
	for i := range edges {
		edges[i] = edge(r.Intn(v), r.Intn(v), int64(r.Intn(31)-8))
	}

	return mustStore(t, v, edges...)
}

func TestBellmanFord_MatchesOracleOnCyclicGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var cyclic, clean int
	for trial := 0; trial < 60; trial++ {
		v := 1 + r.Intn(10)
		g := randomGraph(t, r, v, r.Intn(3*v+1))
		oracle := floydWarshall(g)

		for src := 0; src < v; src++ {
			// A negative cycle is reachable iff some reachable k has d[k][k] < 0.
			hasCycle := false
			for k := 0; k < v; k++ {
				if oracle[src][k] != inf && oracle[k][k] < 0 {
					hasCycle = true
				}
			}

			d, err := bellmanford.BellmanFord(context.Background(), g, src)
			if hasCycle {
				cyclic++
				assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle, "trial %d src %d", trial, src)
				assert.Nil(t, d)
				continue
			}
			clean++
			require.NoError(t, err, "trial %d src %d", trial, src)
			assert.Zero(t, d[src])
			if diff := cmp.Diff(bellmanford.Distances(oracle[src]), d); diff != "" {
				t.Fatalf("trial %d src %d (-oracle +got):\n%s", trial, src, diff)
			}
		}
	}
	assert.Positive(t, cyclic, "generator must produce negative cycles")
	assert.Positive(t, clean)
}

func TestDistances_Helpers(t *testing.T) {
	d := bellmanford.Distances{0, inf, 7}
	assert.True(t, d.Reachable(0))
	assert.False(t, d.Reachable(1))
	assert.False(t, d.Reachable(-1))
	assert.False(t, d.Reachable(3))

	c := d.Clone()
	c[2] = 99
	assert.EqualValues(t, 7, d[2])
	assert.Nil(t, bellmanford.Distances(nil).Clone())
}

func TestSlotState_String(t *testing.T) {
	assert.Equal(t, "uncomputed", bellmanford.Uncomputed.String())
	assert.Equal(t, "computing", bellmanford.Computing.String())
	assert.Equal(t, "computed", bellmanford.Computed.String())
	assert.Equal(t, "rejected", bellmanford.Rejected.String())
	assert.Equal(t, "unknown", bellmanford.SlotState(42).String())
}
