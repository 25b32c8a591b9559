// SPDX-License-Identifier: MIT

// Package builder: the random weight-matrix generator.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// Random generates an n×n weight matrix in the conventions of the given
// semiring: absent edges hold sr.Zero(), the diagonal holds sr.One(), and
// present edges carry weights drawn uniformly from the configured range.
//
// Steps:
//  1. Validate n and the gathered options.
//  2. Allocate the matrix pre-filled with 0̄; write 1̄ on the diagonal.
//  3. If WithConnected, thread the chain spine 0—1—…—(n−1), both directions.
//  4. Sprinkle edges: directed mode visits every ordered pair (i ≠ j);
//     symmetric mode visits i < j and mirrors. Pair order and RNG draws are
//     fixed, so equal seeds yield equal matrices.
//
// Complexity: O(n²) time and memory.
func Random(n int, sr semiring.Semiring[float64], opts ...Option) (*matrix.Dense[float64], error) {
	// 1. Validation.
	if n < 0 {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrBadOrder)
	}
	cfg, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	// 2. 0̄ everywhere, 1̄ on the diagonal.
	W, err := matrix.NewDense(n, sr.Zero())
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		row[i] = sr.One()
	}

	rng := rngFromSeed(cfg.seed)

	// 3. Connectivity spine first, so its weights are seed-stable no matter
	// what density the sprinkle below uses.
	if cfg.connected {
		for i := 1; i < n; i++ {
			w := drawWeight(rng, cfg)
			rowPrev, _ := W.RowView(i - 1)
			rowCur, _ := W.RowView(i)
			rowPrev[i] = w
			rowCur[i-1] = w
		}
	}

	// 4. Random edges in fixed pair order.
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		jStart := 0
		if cfg.symmetric {
			jStart = i + 1 // upper triangle only; mirrored below
		}
		for j := jStart; j < n; j++ {
			if j == i {
				continue
			}
			if rng.Float64() >= cfg.density {
				continue
			}
			// First-write-wins keeps spine edges intact.
			if !sr.IsZero(row[j]) {
				continue
			}
			w := drawWeight(rng, cfg)
			row[j] = w
			if cfg.symmetric {
				mirror, _ := W.RowView(j)
				mirror[i] = w
			}
		}
	}

	return W, nil
}

// drawWeight samples one edge weight from [lo, hi); lo == hi yields lo.
func drawWeight(rng *rand.Rand, cfg options) float64 {
	if cfg.weightHi == cfg.weightLo {
		return cfg.weightLo
	}

	return cfg.weightLo + rng.Float64()*(cfg.weightHi-cfg.weightLo)
}
