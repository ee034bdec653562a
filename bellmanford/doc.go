// Package bellmanford computes single-source shortest distances over a frozen
// core.Store with the Bellman-Ford relaxation algorithm, detects negative
// cycles reachable from the source, and memoizes every successful result per
// source vertex.
//
// Overview:
//
//   - BellmanFord runs one computation with no caching.
//   - Engine wraps a Store with a V×V memoization cache: the first query for a
//     source relaxes the graph, later queries for that source are served from
//     the cache in O(V).
//   - Negative weights are allowed. A negative cycle reachable from the source
//     makes the problem ill-posed; the query fails with ErrNegativeCycle and
//     nothing is cached for that source.
//
// Algorithm:
//
//  1. dist[v] = Unreachable for every v, dist[source] = 0.
//  2. Exactly V-1 passes over the edge list in Store order. For each edge
//     (u, v, w): if dist[u] is finite and dist[u]+w < dist[v], set dist[v].
//  3. One more scan. Any edge that still relaxes proves a negative cycle
//     reachable from the source.
//
// Additions saturate: a sum above math.MaxInt64 becomes Unreachable and can
// never improve a distance.
//
// Cache semantics:
//
// A cache row is valid iff all V cells of that row are populated. Rows are
// written whole under the engine lock, so a half-written row is never visible.
// Each source slot moves through
//
//	Uncomputed → Computing → Computed
//	                       ↘ Rejected   (only with WithRejectedMemo)
//
// Without WithRejectedMemo a slot that hit a negative cycle falls back to
// Uncomputed and the next query recomputes; detection is deterministic so the
// answer is the same. Reset clears every slot.
//
// Concurrency:
//
// Engine is safe for concurrent use. Cache reads share a sync.RWMutex;
// concurrent misses for the same source are coalesced with singleflight so the
// graph is relaxed once. Misses for different sources run in parallel.
//
// Complexity:
//
//   - Time:  O(V·E) per miss, O(V) per hit.
//   - Space: O(V²) for the cache, O(V) per computation.
//
// Errors (sentinel):
//
//	ErrNilGraph      - New was given a nil store.
//	ErrInvalidSource - source ∉ [0, V).
//	ErrNegativeCycle - a negative cycle is reachable from the source.
//
// Example:
//
//	g, _ := core.FromEdges(3, []core.Edge{{0, 1, 4}, {0, 2, 5}, {1, 2, -2}})
//	eng, _ := bellmanford.New(g)
//	dist, err := eng.Query(ctx, 0) // [0 4 2]
package bellmanford
