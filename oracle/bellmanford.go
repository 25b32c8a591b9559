// SPDX-License-Identifier: MIT
// Package oracle: SSSP reference (Bellman–Ford), n−1 full edge sweeps.

package oracle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/semipath/matrix"
)

// BellmanFord computes single-source shortest distances from source by n−1
// full relaxation sweeps over the dense matrix (+Inf = no edge, 0 diagonal).
// Negative weights are permitted; negative CYCLES are not detected — the
// caller owns that precondition, matching the closure this oracle validates.
//
// Complexity: O(n³) time on dense input, O(n) space.
func BellmanFord(W *matrix.Dense[float64], source int) ([]float64, error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("BellmanFord: %w", err)
	}
	n := W.Rows()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("BellmanFord: source %d, order %d: %w", source, n, ErrSourceOutOfRange)
	}

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	// A simple shortest path uses at most n−1 edges: sweep that many times.
	var round, u, v int
	for round = 1; round < n; round++ {
		for u = 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue // nothing to relax through an unreached vertex
			}
			row, _ := W.RowView(u)
			for v = 0; v < n; v++ {
				if math.IsInf(row[v], 1) {
					continue
				}
				if cand := dist[u] + row[v]; cand < dist[v] {
					dist[v] = cand
				}
			}
		}
	}

	return dist, nil
}
