// SPDX-License-Identifier: MIT
// Package oracle: dense APSP reference (Floyd–Warshall).
//
// Contract:
//   - Square matrix; +Inf means "no path" off-diagonal; diagonal is 0.
//   - Deterministic k→i→j loop order; strict-improvement relaxation.

package oracle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/semipath/matrix"
)

// FloydWarshall computes all-pairs shortest distances and returns a fresh
// matrix; W is never mutated.
//
// Loop order is fixed (k → i → j) and relaxation is strict (cand < dij),
// so accumulation is deterministic and ties keep the earlier value.
// Complexity: O(n³) time, O(n²) space for the result.
func FloydWarshall(W *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("FloydWarshall: %w", err)
	}

	n := W.Rows()
	d := W.Clone()

	// Flat row views; the triple loop below indexes without rechecks.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = d.RowView(i)
	}

	var (
		k, i, j  int
		ik, cand float64
		rowK     []float64
	)
	for k = 0; k < n; k++ {
		rowK = rows[k]
		for i = 0; i < n; i++ {
			ik = rows[i][k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no path via k improves i→j
			}
			for j = 0; j < n; j++ {
				if math.IsInf(rowK[j], 1) {
					continue // k cannot reach j
				}
				cand = ik + rowK[j]
				if cand < rows[i][j] {
					rows[i][j] = cand
				}
			}
		}
	}

	return d, nil
}
