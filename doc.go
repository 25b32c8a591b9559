// Package semipath unifies the classical shortest-path and spanning-tree
// problems under one algebraic roof: the semiring.
//
// 🚀 What is semipath?
//
//	A small, deterministic library that shows — and tests — that APSP, SSSP
//	and MST are the same fixed-point iteration, parameterized only by an
//	algebra (⊕, ⊗, 0̄, 1̄):
//		• semiring/ — the algebra itself plus predefined instances
//		  (shortest-path, longest-path, widest-path, reachability, path-count)
//		• matrix/   — generic dense square weight matrices
//		• closure/  — the generalized distance closure: one Extend round,
//		  repeated n−1 times, yields APSP or SSSP depending on the source
//		• mst/      — Prim-like greedy growth and a Borůvka-style variant,
//		  both driven by ⊕ as the "improves-upon" comparator
//		• oracle/   — Floyd–Warshall, Dijkstra, Bellman–Ford, Kruskal, Prim
//		  and widest-path, kept only to validate the generalized results
//		• builder/  — reproducible random weight-matrix fixtures
//		• mtx/      — Matrix Market loading for real sparse test graphs
//
// ✨ Why choose semipath?
//
//   - One algorithm, many problems — swap the semiring, keep the code
//   - Transparent by design — fixed n−1 rounds, no early-exit tricks,
//     results directly diffable against the classical oracles
//   - Deterministic — fixed loop orders, seeded RNG, stable tie-breaks
//   - Pure Go — in-memory, side-effect-free, safe for concurrent callers
//
// Quick taste:
//
//	sr := semiring.ShortestPath()
//	L, _ := closure.Solve(W, sr)                          // APSP matrix
//	d, _ := closure.Solve(W, sr, closure.WithSource(0))   // SSSP row
//	edges, _ := mst.Generalized(W, sr)                    // spanning tree
//
// The closure algorithms are deliberately cubic/quadratic and dense: the
// point is structural comparability across problems, not sparse-graph speed.
// Dive into each package's doc.go for the math, the edge cases and examples.
package semipath
