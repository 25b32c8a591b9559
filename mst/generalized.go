// SPDX-License-Identifier: MIT

// Package mst: the generalized Prim-like greedy growth.
package mst

import (
	"fmt"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// Generalized grows a minimum-weight spanning edge set from vertex 0, with
// the semiring's ⊕ acting as the "improves-upon" comparator.
//
// State: inTree[v]; best[v], the best candidate edge weight reaching v
// (0̄ = unreached; vertex 0 seeded with 1̄); parent[v] = -1.
//
// Steps, repeated up to n times:
//  1. Select the untreated u whose best[u] is the fixed point of ⊕ over all
//     untreated vertices. The scan runs left to right and replaces the
//     candidate only on STRICT improvement (best[v] ⊕ best[u] == best[v]
//     and best[v] != best[u]), so ties keep the first-encountered index.
//  2. If best[u] is still 0̄ the reachable component is exhausted: stop.
//     Only vertex 0's component gets spanned on disconnected input — fewer
//     than n−1 edges, never a cross-component edge.
//  3. Mark u in-tree; if parent[u] != -1, emit (parent[u], u, W[parent[u]][u]).
//  4. Relax: each untreated v with W[u][v] != 0̄ adopts the candidate when v
//     is unreached or W[u][v] ⊕ best[v] == W[u][v] (at least as good).
//
// Complexity: O(n²) time, O(n) extra space.
func Generalized[T comparable](W *matrix.Dense[T], sr semiring.Semiring[T]) ([]Edge[T], error) {
	// Validate shape once; the loops below index unchecked row views.
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("Generalized: %w", err)
	}
	n := W.Rows()
	if n == 0 {
		return []Edge[T]{}, nil
	}

	// Growth state.
	inTree := make([]bool, n)
	parent := make([]int, n)
	best := make([]T, n)
	for v := 0; v < n; v++ {
		parent[v] = -1
		best[v] = sr.Zero() // unreached
	}
	best[0] = sr.One() // seed: the tree starts at vertex 0

	edges := make([]Edge[T], 0, n-1)

	var round, u, v int
	var w T
	for round = 0; round < n; round++ {
		// 1. Left-to-right selection; strict improvement keeps first index on ties.
		u = -1
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if u == -1 || (sr.Add(best[v], best[u]) == best[v] && best[v] != best[u]) {
				u = v
			}
		}

		// 2. Unreached selection means vertex 0's component is fully spanned.
		if u == -1 || sr.IsZero(best[u]) {
			break
		}

		// 3. Adopt u; emit its tree edge unless u is the seed.
		inTree[u] = true
		if parent[u] != -1 {
			wr, _ := W.RowView(parent[u])
			edges = append(edges, Edge[T]{U: parent[u], V: u, Weight: wr[u]})
		}

		// 4. Relax candidates through u.
		row, _ := W.RowView(u)
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			w = row[v]
			if sr.IsZero(w) {
				continue // no edge u-v
			}
			if sr.IsZero(best[v]) || sr.Add(w, best[v]) == w {
				best[v] = w
				parent[v] = u
			}
		}
	}

	return edges, nil
}
