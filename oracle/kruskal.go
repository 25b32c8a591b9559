// SPDX-License-Identifier: MIT
// Package oracle: MST reference (Kruskal), global edge sort + union-find.

package oracle

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/mst"
)

// Kruskal computes an MST of the undirected graph encoded by the symmetric
// matrix W (+Inf = no edge; the upper triangle is scanned).
//
// Steps:
//  1. Extract edges (i, j, W[i][j]) for i < j with a finite weight.
//  2. Stable-sort by weight; equal weights keep scan order, so ties break
//     predictably by (i, j).
//  3. Walk the sorted list with a union-find, keeping every edge that joins
//     two components, until n−1 edges are collected.
//  4. Fewer than n−1 kept edges → ErrDisconnected.
//
// Returns the edges in acceptance order plus their arithmetic total weight.
// Complexity: O(n² log n) time (sorting dominates), O(n²) space for edges.
func Kruskal(W *matrix.Dense[float64]) ([]mst.Edge[float64], float64, error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, 0, fmt.Errorf("Kruskal: %w", err)
	}
	n := W.Rows()
	if n == 0 {
		return []mst.Edge[float64]{}, 0, nil
	}

	// 1. Upper-triangle edge extraction.
	edges := make([]mst.Edge[float64], 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		for j := i + 1; j < n; j++ {
			if !math.IsInf(row[j], 1) {
				edges = append(edges, mst.Edge[float64]{U: i, V: j, Weight: row[j]})
			}
		}
	}

	// 2. Stable sort by weight.
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].Weight < edges[b].Weight })

	// 3. Greedy union-find pass.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	tree := make([]mst.Edge[float64], 0, n-1)
	var total float64
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue // would close a cycle
		}
		parent[ru] = rv
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	// 4. Connectivity check.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
