// SPDX-License-Identifier: MIT
// Package oracle: SSSP reference (Dijkstra) for non-negative weights.

package oracle

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/katalvlaran/semipath/matrix"
)

// pqItem is one priority-queue entry: a vertex and the tentative distance
// it was pushed at. Stale entries are skipped on pop (lazy decrease-key).
type pqItem struct {
	vertex int
	dist   float64
}

// byDistance orders pqItem by ascending distance, breaking exact ties by
// vertex index so heap behavior is deterministic.
func byDistance(a, b interface{}) int {
	x, y := a.(pqItem), b.(pqItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	default:
		return x.vertex - y.vertex
	}
}

// Dijkstra computes single-source shortest distances from source over a
// dense matrix with non-negative weights (+Inf = no edge, 0 diagonal).
//
// Steps:
//  1. Validate shape, source range, and non-negativity of every finite edge.
//  2. dist[source] = 0; push (source, 0) onto a min-heap keyed by distance.
//  3. Pop the nearest unfinished vertex (skipping stale entries), settle
//     it, and relax all outgoing edges, pushing improved tentative
//     distances.
//  4. Unreachable vertices keep +Inf.
//
// Complexity: O(n² log n) time on dense input, O(n) space beyond the heap.
func Dijkstra(W *matrix.Dense[float64], source int) ([]float64, error) {
	// 1. Validation.
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("Dijkstra: %w", err)
	}
	n := W.Rows()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("Dijkstra: source %d, order %d: %w", source, n, ErrSourceOutOfRange)
	}
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		for j, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("Dijkstra: W[%d][%d] = %v: %w", i, j, w, ErrNegativeWeight)
			}
		}
	}

	// 2. Initialize distances and the heap.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	done := make([]bool, n)
	pq := binaryheap.NewWith(byDistance)
	pq.Push(pqItem{vertex: source, dist: 0})

	// 3. Settle vertices nearest-first.
	for !pq.Empty() {
		raw, _ := pq.Pop()
		it := raw.(pqItem)
		u := it.vertex
		if done[u] || it.dist > dist[u] {
			continue // stale entry (lazy decrease-key)
		}
		done[u] = true

		row, _ := W.RowView(u)
		for v := 0; v < n; v++ {
			if done[v] || math.IsInf(row[v], 1) {
				continue
			}
			if cand := dist[u] + row[v]; cand < dist[v] {
				dist[v] = cand
				pq.Push(pqItem{vertex: v, dist: cand})
			}
		}
	}

	return dist, nil
}
