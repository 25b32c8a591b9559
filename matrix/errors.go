// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All constructors,
// methods and validators return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...)); tests match them via errors.Is. No method
// panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative.
	// Zero is legal: empty matrices are meaningful to the closure.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/RowView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. ragged rows in FromRows or mismatched shapes in
	// ValidateSameShape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but r != c.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix
	// was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
