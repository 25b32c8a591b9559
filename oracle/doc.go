// Package oracle bundles the classical, problem-specific graph algorithms —
// Floyd–Warshall, Dijkstra, Bellman–Ford, Kruskal, Prim and the widest-path
// closure — used purely to validate the generalized semiring algorithms.
//
// This package is NOT part of the algebraic core. It exists because the
// core's primary correctness argument is a diff: every generalized result
// (full distance matrix, full vector, full edge list) must match what the
// trusted textbook algorithm produces on the same input. Nothing here is
// generalized, tuned, or clever on purpose.
//
// Conventions
//
//   - All oracles run on *matrix.Dense[float64] in the classical numeric
//     convention: math.Inf(1) marks "no path" off-diagonal and the diagonal
//     holds 0 — i.e. exactly the shortest-path semiring's 0̄ and 1̄, so
//     closure output diffs element-wise without translation.
//   - WidestPath is the one exception: it consumes the widest-path
//     convention (0 = no edge, +Inf on the diagonal).
//   - The MST oracles treat W as undirected and require it symmetric; they
//     scan the upper triangle only.
//
// Algorithms Provided
//
//   - FloydWarshall(W)      — APSP, fixed k→i→j order, O(n³).
//   - Dijkstra(W, source)   — SSSP, non-negative weights, lazy-deletion
//     binary heap (gods), O(n² log n) dense.
//   - BellmanFord(W, source)— SSSP, n−1 edge sweeps, O(n³) dense.
//   - Kruskal(W)            — MST, stable weight sort + union-find.
//   - Prim(W, root)         — MST, heap-driven growth from root.
//   - WidestPath(W)         — max-min closure, O(n³).
//
// Error Conditions
//
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare — malformed W.
//   - ErrSourceOutOfRange — source/root outside [0, n).
//   - ErrNegativeWeight   — Dijkstra saw a negative edge.
//   - ErrDisconnected     — Kruskal/Prim could not span all n vertices.
package oracle
