// SPDX-License-Identifier: MIT
// Package closure: the two Extend kernels (one relaxation round each).
//
// Purpose:
//   - Canonical semiring matrix/vector product with deterministic loop order.
//   - Shared by Solve/SlowAPSP/SSSP; allocates fresh output, never in-place.
//
// Contract:
//   - Inputs already shape-validated by the public wrappers; the private
//     kernels index without per-access checks via RowView.

package closure

import (
	"fmt"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// Extend performs one APSP round: L'[i][j] = ⊕ₖ L[i][k] ⊗ W[k][j].
// L and W must both be n×n; the result is a fresh n×n matrix (L and W are
// never mutated, and the output aliases neither input).
//
// Complexity: O(n³) time, O(n²) space.
func Extend[T comparable](L, W *matrix.Dense[T], sr semiring.Semiring[T]) (*matrix.Dense[T], error) {
	// Validate: W square, L same shape.
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("Extend: %w", err)
	}
	if err := matrix.ValidateSameShape(L, W); err != nil {
		return nil, fmt.Errorf("Extend: %w", err)
	}

	return extendMatrix(L, W, sr), nil
}

// ExtendVector performs one SSSP round: d'[j] = ⊕ᵢ d[i] ⊗ W[i][j] — the
// row-vector product, i.e. exactly the source row of the matrix form.
// len(d) must equal n; the result is a fresh vector.
//
// Complexity: O(n²) time, O(n) space.
func ExtendVector[T comparable](d []T, W *matrix.Dense[T], sr semiring.Semiring[T]) ([]T, error) {
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, fmt.Errorf("ExtendVector: %w", err)
	}
	if len(d) != W.Rows() {
		return nil, fmt.Errorf("ExtendVector: vector length %d vs matrix order %d: %w",
			len(d), W.Rows(), matrix.ErrDimensionMismatch)
	}

	return extendVector(d, W, sr), nil
}

// extendMatrix is the unvalidated APSP kernel.
// Loop order is fixed (i → j → k, all ascending) so ⊕ accumulates in a
// deterministic order for every semiring.
func extendMatrix[T comparable](L, W *matrix.Dense[T], sr semiring.Semiring[T]) *matrix.Dense[T] {
	n := W.Rows()
	out, _ := matrix.NewDense(n, sr.Zero()) // n >= 0 already established

	// Collect row views once; saves a bounds-checked call per element.
	wRows := make([][]T, n)
	lRows := make([][]T, n)
	oRows := make([][]T, n)
	var i int
	for i = 0; i < n; i++ {
		wRows[i], _ = W.RowView(i)
		lRows[i], _ = L.RowView(i)
		oRows[i], _ = out.RowView(i)
	}

	// Predeclare loop variables; no allocations inside the hot loops.
	var (
		j, k int
		acc  T
		lRow []T
	)
	for i = 0; i < n; i++ {
		lRow = lRows[i]
		for j = 0; j < n; j++ {
			acc = sr.Zero()
			for k = 0; k < n; k++ {
				acc = sr.Add(acc, sr.Mul(lRow[k], wRows[k][j]))
			}
			oRows[i][j] = acc
		}
	}

	return out
}

// extendVector is the unvalidated SSSP kernel; same conventions as above.
// Accumulation into out[j] runs over ascending i, row-major over W, so the
// vector round visits memory and operands in a fixed order.
func extendVector[T comparable](d []T, W *matrix.Dense[T], sr semiring.Semiring[T]) []T {
	n := W.Rows()
	out := make([]T, n)
	for j := range out {
		out[j] = sr.Zero()
	}

	var (
		i, j int
		wRow []T
	)
	for i = 0; i < n; i++ {
		wRow, _ = W.RowView(i)
		for j = 0; j < n; j++ {
			out[j] = sr.Add(out[j], sr.Mul(d[i], wRow[j]))
		}
	}

	return out
}
