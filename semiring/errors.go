// SPDX-License-Identifier: MIT
// Package semiring: sentinel error set.
// All errors returned by this package wrap one of the sentinels below;
// callers match them with errors.Is. Construction never panics on
// user-visible conditions.

package semiring

import "errors"

var (
	// ErrNilOperation indicates that New received a nil add or multiply
	// callable. A semiring without both operations is meaningless.
	ErrNilOperation = errors.New("semiring: nil operation")

	// ErrLawViolation indicates that a sampled law check failed during
	// construction. The wrapping error names the violated law and the
	// operand values that exposed it.
	ErrLawViolation = errors.New("semiring: law violation")
)
