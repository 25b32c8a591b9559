// SPDX-License-Identifier: MIT
// Package oracle: widest-path (bottleneck) reference, max-min closure.

package oracle

import (
	"fmt"

	"github.com/katalvlaran/semipath/matrix"
)

// WidestPath computes the maximum bottleneck capacity between all pairs via
// the Floyd–Warshall scheme with (max, min) in place of (min, +).
//
// Convention (widest-path, NOT the shortest-path one): 0 marks "no edge"
// off-diagonal and the diagonal holds +Inf (unbounded capacity to self).
// W is never mutated; loop order is fixed k→i→j.
//
// Complexity: O(n³) time, O(n²) space for the result.
func WidestPath(W *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("WidestPath: %w", err)
	}

	n := W.Rows()
	width := W.Clone()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = width.RowView(i)
	}

	var (
		k, i, j    int
		ik, bottle float64
		rowK       []float64
	)
	for k = 0; k < n; k++ {
		rowK = rows[k]
		for i = 0; i < n; i++ {
			ik = rows[i][k]
			if ik == 0 {
				continue // i cannot reach k at any capacity
			}
			for j = 0; j < n; j++ {
				// Bottleneck through k: the narrower of the two legs.
				bottle = rowK[j]
				if ik < bottle {
					bottle = ik
				}
				if bottle > rows[i][j] {
					rows[i][j] = bottle
				}
			}
		}
	}

	return width, nil
}
