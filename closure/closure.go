// SPDX-License-Identifier: MIT

// Package closure: the public fixed-point drivers built on the Extend kernels.
package closure

import (
	"fmt"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// Solve runs the generalized closure to its fixed point.
//
// Without options it computes the full APSP matrix: L := W, then n−1 matrix
// rounds. With WithSource(s) it computes the SSSP vector from s — d[s] = 1̄,
// every other entry 0̄, then n−1 vector rounds — returned as a 1×n matrix so
// both branches share one result shape.
//
// Steps:
//  1. Validate: W non-nil and square; source (if any) within [0, n).
//  2. Initialize L = W (APSP) or d = unit vector at source (SSSP).
//  3. Apply the matching Extend form exactly n−1 times. The bound follows
//     because any simple shortest path has at most n−1 edges; no early
//     termination is attempted (transparency over speed, by contract).
//  4. Return the final matrix; inputs are never mutated.
//
// Edge cases: n == 0 yields an empty matrix (0×0, or 1×0 with a source
// rejected as out of range); n == 1 yields the initial state untouched.
//
// Complexity: O(n⁴) time / O(n²) space for APSP, O(n³) / O(n) for SSSP.
func Solve[T comparable](W *matrix.Dense[T], sr semiring.Semiring[T], opts ...Option) (*matrix.Dense[T], error) {
	// 1. Shape validation is shared by both branches.
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	cfg := gatherOptions(opts)

	// 2-4. Dispatch on the optional source.
	if cfg.source == noSource {
		return SlowAPSP(W, sr)
	}

	d, err := SSSP(W, sr, cfg.source)
	if err != nil {
		return nil, err
	}

	// Wrap the vector as a one-row matrix for interface uniformity.
	row, err := matrix.NewRect(1, len(d), sr.Zero())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	view, _ := row.RowView(0)
	copy(view, d)

	return row, nil
}

// SlowAPSP computes the all-pairs closure by n−1 explicit Extend rounds.
// The "slow" name is traditional: it advertises that this is the
// transparent O(n⁴) matrix-power scheme, not repeated squaring — the point
// is an implementation simple enough to trust as a comparison baseline.
//
// Complexity: O(n⁴) time, O(n²) space.
func SlowAPSP[T comparable](W *matrix.Dense[T], sr semiring.Semiring[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("SlowAPSP: %w", err)
	}

	// L⁽¹⁾ = W: paths of at most one edge.
	n := W.Rows()
	L := W.Clone()

	// n−1 rounds reach paths of at most n−1 edges, the fixed point.
	for r := 1; r < n; r++ {
		L = extendMatrix(L, W, sr)
	}

	return L, nil
}

// SSSP computes the single-source closure from source and returns the raw
// distance vector. Prefer Solve with WithSource when the uniform one-row
// matrix shape is wanted.
//
// Complexity: O(n³) time, O(n) space.
func SSSP[T comparable](W *matrix.Dense[T], sr semiring.Semiring[T], source int) ([]T, error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("SSSP: %w", err)
	}
	n := W.Rows()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("SSSP: source %d, order %d: %w", source, n, ErrSourceOutOfRange)
	}

	// d⁽⁰⁾: 1̄ at the source, 0̄ elsewhere.
	d := make([]T, n)
	for i := range d {
		d[i] = sr.Zero()
	}
	d[source] = sr.One()

	// n−1 relaxation rounds, algebraic Bellman–Ford.
	for r := 1; r < n; r++ {
		d = extendVector(d, W, sr)
	}

	return d, nil
}
