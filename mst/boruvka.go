// SPDX-License-Identifier: MIT

// Package mst: Borůvka-style round-based contraction.
package mst

import (
	"fmt"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// Boruvka builds a spanning forest by repeated multi-edge contraction:
// every round, each live component selects its best outgoing edge under ⊕,
// then all selected edges merge their components through a disjoint-set.
//
// Steps per round:
//  1. Scan all ordered pairs (u, v), u ascending then v ascending. For a
//     pair with W[u][v] != 0̄ whose endpoints sit in different components,
//     the edge becomes component find(u)'s candidate when it strictly
//     improves on the current one (w ⊕ best == w and w != best); ties keep
//     the earlier pair, so selection is deterministic.
//  2. Apply every candidate whose endpoints are STILL in different
//     components (an earlier merge of the same round may have joined them).
//     Each applied edge is emitted and its components united.
//  3. Stop when a round applies no edge (single component left, or the
//     remaining components are mutually unreachable).
//
// Unlike Generalized, which grows vertex 0's component only, Boruvka spans
// EVERY component: on disconnected input it returns a spanning forest of
// the whole graph. On connected input both algorithms agree on total
// weight (the edge sets may differ under ties).
//
// Each round at least halves the component count on connected input, so
// there are O(log n) rounds of O(n²) scans: O(n² log n) time, O(n) space.
func Boruvka[T comparable](W *matrix.Dense[T], sr semiring.Semiring[T]) ([]Edge[T], error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("Boruvka: %w", err)
	}
	n := W.Rows()
	if n == 0 {
		return []Edge[T]{}, nil
	}

	sets := newDSU(n)
	forest := make([]Edge[T], 0, n-1)

	// candidate[root] is the best outgoing edge of the component rooted at
	// root this round; has[root] marks occupancy (weights cannot double as
	// the marker — 0̄ never survives step 1's filter anyway).
	candidate := make([]Edge[T], n)
	has := make([]bool, n)

	for sets.components() > 1 {
		// Reset per-round selection state.
		for i := range has {
			has[i] = false
		}

		// 1. Every component picks its best outgoing edge.
		var u, v, root int
		var w T
		for u = 0; u < n; u++ {
			row, _ := W.RowView(u)
			for v = 0; v < n; v++ {
				w = row[v]
				if sr.IsZero(w) || sets.find(u) == sets.find(v) {
					continue // no edge, or internal to a component
				}
				root = sets.find(u)
				if !has[root] || (sr.Add(w, candidate[root].Weight) == w && w != candidate[root].Weight) {
					candidate[root] = Edge[T]{U: u, V: v, Weight: w}
					has[root] = true
				}
			}
		}

		// 2. Contract: apply candidates that still cross components.
		merged := false
		for root = 0; root < n; root++ {
			if !has[root] {
				continue
			}
			e := candidate[root]
			if sets.union(e.U, e.V) {
				forest = append(forest, e)
				merged = true
			}
		}

		// 3. No merge means the remaining components cannot reach each other.
		if !merged {
			break
		}
	}

	return forest, nil
}
