// Package roadpath answers single-source shortest-distance queries over
// directed road networks whose distances may be negative.
//
// What is roadpath?
//
//	A small, thread-safe toolkit built around Bellman-Ford:
//		• core/        - fixed-size edge Store: create, set edges, freeze
//		• bellmanford/ - relaxation, negative-cycle detection, per-source cache
//		• roadnet/     - named cities: text & YAML input, tables, generator
//		• cmd/roadpath - CLI: query, serve (HTTP + Prometheus), generate
//
// Why Bellman-Ford?
//
//   - Negative distances are legal (rebates, tolls refunded, −log rates)
//   - A reachable negative cycle is reported, never a bogus finite answer
//   - Repeated queries from the same city cost O(V), not O(V·E)
//
// Quick ASCII example:
//
//	  A --4--> B
//	  |        |
//	  5       -2
//	  v        v
//	  C <------+
//
//	from A: A=0, B=4, C=2
//
//	go install github.com/katalvlaran/roadpath/cmd/roadpath@latest
package roadpath
