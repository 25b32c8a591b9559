// Package mst generalizes minimum-spanning-tree construction over a
// semiring: "this edge improves on that one" is decided by ⊕ instead of a
// hard-coded numeric comparison.
//
// What & Why
//
//   - The observation:
//     Prim's algorithm needs only two ingredients from its weight domain —
//     a way to pick the better of two candidate edges, and a marker for
//     "no candidate yet". A semiring supplies both: ⊕ selects (for min-plus
//     it IS min), and 0̄ marks absence. Nothing else in the greedy growth
//     depends on numbers.
//
//   - The comparator:
//     candidate w improves on current best b  ⇔  w ⊕ b == w.
//     Under min-plus that reads "w is at most b". Selection keeps the
//     FIRST-encountered fixed point of ⊕ during a left-to-right scan, so
//     ties resolve to the smallest vertex index, deterministically.
//
// Algorithms Provided
//
//   - Generalized(W, sr) — Prim-like greedy growth from vertex 0.
//     n selection rounds, each an O(n) scan plus an O(n) relaxation:
//     O(n²) total, intentionally matching the closure's dense complexity
//     class rather than adopting sparse-graph heaps, so the generalized
//     algorithms stay structurally comparable.
//     On a connected graph: exactly n−1 edges whose total weight equals any
//     classical MST's (the edge SET may differ from Kruskal/Prim under
//     weight ties; the total may not).
//     On a disconnected graph: growth STOPS when the best remaining
//     candidate is still 0̄ — only vertex 0's component is spanned, fewer
//     than n−1 edges return, and no edge crosses components. Callers must
//     treat a short edge list as "disconnected", not as an error.
//
//   - Boruvka(W, sr) — round-based multi-edge contraction: every round each
//     component selects its best outgoing edge under ⊕, then components
//     merge through a disjoint-set (path-halving find, union by rank).
//     O(n² log n) worst case. Unlike Generalized it spans EVERY component,
//     returning a spanning forest of the whole graph.
//
// Conventions consumed from callers
//
//   - W is square, dense and SYMMETRIC (spanning trees live on undirected
//     graphs); W[u][v] == sr.Zero() means "no edge".
//   - An edge whose weight equals 0̄ is indistinguishable from a missing
//     edge. This is the documented price of 0̄ doubling as the absence
//     marker; under min-plus (0̄ = +Inf) it costs nothing.
//   - Intended for the shortest-path semiring. Any semiring works
//     mechanically, but "spanning tree optimality" is only meaningful when
//     ⊕ is selective (picks one operand), as min and max are.
//
// Error Conditions
//
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare — malformed W.
//
// TotalWeight folds edge weights with ⊗ starting from 1̄ — under min-plus
// exactly the arithmetic sum the classical oracles report.
//
// For examples of usage, see example_test.go in this package.
package mst
