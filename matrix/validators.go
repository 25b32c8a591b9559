// SPDX-License-Identifier: MIT
// Package matrix: shared shape validators.
// Algorithms in closure/, mst/ and oracle/ call these at their boundary so
// the hot loops downstream can index without per-access checks.

package matrix

import "fmt"

// ValidateSquare checks that m is non-nil and square.
// Returns ErrNilMatrix or ErrNonSquare (wrapped with the observed shape).
// Complexity: O(1).
func ValidateSquare[T any](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateSameShape checks that a and b are non-nil and share dimensions.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T any](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}
