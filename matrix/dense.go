// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major container of T values,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import "fmt"

// Dense is a row-major r×c matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is an empty 0×0 matrix and is usable as such.
type Dense[T any] struct {
	r, c int // number of rows and columns, both >= 0
	data []T // flat backing storage, length == r*c
}

// NewDense creates a square n×n Dense with every entry set to fill.
// fill is normally the consuming semiring's zero ("no edge"); the container
// itself attaches no meaning to it.
// Stage 1 (Validate): n must be >= 0 (n == 0 yields an empty matrix).
// Stage 2 (Prepare):  allocate and fill the flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(n²) time and memory.
func NewDense[T any](n int, fill T) (*Dense[T], error) {
	return NewRect(n, n, fill)
}

// NewRect creates an r×c Dense with every entry set to fill. The rectangular
// form exists for the 1×n vectors the SSSP closure returns; weight matrices
// are always square.
// Complexity: O(r*c) time and memory.
func NewRect[T any](rows, cols int, fill T) (*Dense[T], error) {
	// Validate dimensions; zero is legal, negative is not.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewRect(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// Allocate and pre-fill the flat slice.
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense by deep-copying the given rows.
// Every row must have the same length; ragged input is ErrDimensionMismatch.
// An empty input yields the empty 0×0 matrix.
// Complexity: O(r*c) time and memory.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])

	// Validate rectangularity before allocating.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	// Copy row by row into the flat buffer.
	data := make([]T, r*c)
	for i := 0; i < r; i++ {
		copy(data[i*c:(i+1)*c], rows[i])
	}

	return &Dense[T]{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %dx%d: %w", method, row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RowView returns the backing slice of the given row WITHOUT copying.
// The result aliases internal storage: treat it as a read-only borrow for
// the duration of one algorithm invocation. The cubic closure kernels use
// it to avoid one copy per element access.
// Complexity: O(1).
func (m *Dense[T]) RowView(row int) ([]T, error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("Dense.RowView(%d): %d rows: %w", row, m.r, ErrOutOfRange)
	}

	return m.data[row*m.c : (row+1)*m.c], nil
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// ToRows exports a deep row-slice copy, the shape test assertions and
// oracle diffs consume. Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for debugging output.
func (m *Dense[T]) String() string {
	return fmt.Sprintf("Dense[%dx%d]%v", m.r, m.c, m.ToRows())
}
