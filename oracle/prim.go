// SPDX-License-Identifier: MIT
// Package oracle: MST reference (Prim), heap-driven growth from a root.

package oracle

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/mst"
)

// candidate is one heap entry: a crossing edge u→v with its weight.
type candidate struct {
	u, v   int
	weight float64
}

// byWeight orders candidates ascending by weight, then by (u, v) so exact
// ties pop deterministically.
func byWeight(a, b interface{}) int {
	x, y := a.(candidate), b.(candidate)
	switch {
	case x.weight < y.weight:
		return -1
	case x.weight > y.weight:
		return 1
	case x.u != y.u:
		return x.u - y.u
	default:
		return x.v - y.v
	}
}

// Prim computes an MST of the undirected graph encoded by the symmetric
// matrix W (+Inf = no edge), growing from root on a min-heap of crossing
// edges.
//
// Steps:
//  1. Validate shape and root; n == 1 is a trivial empty tree.
//  2. Mark root visited; push all its incident edges.
//  3. Pop the lightest crossing edge; skip it if its far endpoint is
//     already in the tree; otherwise accept it, mark the endpoint, and push
//     that endpoint's incident edges toward unvisited vertices.
//  4. Fewer than n−1 accepted edges after the heap drains → ErrDisconnected.
//
// Complexity: O(n² log n) time on dense input, O(n²) heap space worst case.
func Prim(W *matrix.Dense[float64], root int) ([]mst.Edge[float64], float64, error) {
	// 1. Validation.
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, 0, fmt.Errorf("Prim: %w", err)
	}
	n := W.Rows()
	if n == 0 {
		return []mst.Edge[float64]{}, 0, nil
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("Prim: root %d, order %d: %w", root, n, ErrSourceOutOfRange)
	}

	// 2. Seed the frontier with the root's incident edges.
	visited := make([]bool, n)
	visited[root] = true
	pq := binaryheap.NewWith(byWeight)
	pushFrontier(pq, W, visited, root)

	// 3. Grow until n−1 edges or the heap drains.
	tree := make([]mst.Edge[float64], 0, n-1)
	var total float64
	for !pq.Empty() && len(tree) < n-1 {
		raw, _ := pq.Pop()
		c := raw.(candidate)
		if visited[c.v] {
			continue // both endpoints already in the tree
		}
		visited[c.v] = true
		tree = append(tree, mst.Edge[float64]{U: c.u, V: c.v, Weight: c.weight})
		total += c.weight
		pushFrontier(pq, W, visited, c.v)
	}

	// 4. Connectivity check.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// pushFrontier pushes every finite edge from u toward an unvisited vertex.
// Complexity: O(n log n) per call.
func pushFrontier(pq *binaryheap.Heap, W *matrix.Dense[float64], visited []bool, u int) {
	row, _ := W.RowView(u)
	for v, w := range row {
		if !visited[v] && !math.IsInf(w, 1) && v != u {
			pq.Push(candidate{u: u, v: v, weight: w})
		}
	}
}
