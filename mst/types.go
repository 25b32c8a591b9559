// SPDX-License-Identifier: MIT

// Package mst: result types shared by the growth and contraction variants.
package mst

import "github.com/katalvlaran/semipath/semiring"

// Edge is one spanning-tree edge: U→V with the weight W[U][V] it was taken
// at. Emission order is construction order (the order vertices joined the
// tree for Generalized; merge order for Boruvka).
type Edge[T comparable] struct {
	U, V   int // endpoint indices into the weight matrix
	Weight T   // W[U][V] at the moment the edge was selected
}

// TotalWeight folds the edge weights with ⊗ starting from 1̄.
// Under the shortest-path semiring (⊗ is +, 1̄ is 0) this is the ordinary
// total weight reported by the classical MST algorithms, which keeps the
// generalized result diffable against the oracles without leaving the
// algebra. Complexity: O(len(edges)).
func TotalWeight[T comparable](edges []Edge[T], sr semiring.Semiring[T]) T {
	total := sr.One()
	for _, e := range edges {
		total = sr.Mul(total, e.Weight)
	}

	return total
}
