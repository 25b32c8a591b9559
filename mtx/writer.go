// SPDX-License-Identifier: MIT

// Package mtx: the coordinate-format writer.
package mtx

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// Write emits W as `matrix coordinate real general`: every off-diagonal
// entry that is not sr.Zero(), row-major, 1-based. The diagonal is never
// written — Read restores it from the semiring's one.
//
// Complexity: O(n²) time, O(1) extra memory.
func Write(w io.Writer, W *matrix.Dense[float64], sr semiring.Semiring[float64]) error {
	if err := matrix.ValidateSquare(W); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	n := W.Rows()

	// First pass: count entries for the size line.
	nnz := 0
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		for j, v := range row {
			if i != j && !sr.IsZero(v) {
				nnz++
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate real general\n%d %d %d\n", n, n, nnz); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	// Second pass: the entries, 1-based.
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		for j, v := range row {
			if i == j || sr.IsZero(v) {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d %g\n", i+1, j+1, v); err != nil {
				return fmt.Errorf("Write: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile creates path (truncating) and delegates to Write.
func WriteFile(path string, W *matrix.Dense[float64], sr semiring.Semiring[float64]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer f.Close()

	return Write(f, W, sr)
}
