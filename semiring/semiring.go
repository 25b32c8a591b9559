// SPDX-License-Identifier: MIT

// Package semiring: the Semiring value type and its constructor.
package semiring

// BinaryOp is a pure binary operation over T. Implementations must be
// deterministic and side-effect-free; every algorithm in this module relies
// on repeated application yielding identical results.
type BinaryOp[T comparable] func(a, b T) T

// Semiring bundles ⊕ (add), ⊗ (multiply) and their identities 0̄ (zero) and
// 1̄ (one) over a single value type T.
//
// T is constrained to comparable because the generalized MST must decide
// "is this entry the no-edge marker" and "did ⊕ keep the left operand" by
// plain equality (see the mst package).
//
// The zero value of Semiring is NOT usable; construct via New or one of the
// predefined instance constructors. A constructed Semiring is immutable and
// safe to copy and share.
type Semiring[T comparable] struct {
	add  BinaryOp[T] // ⊕: combines alternatives between paths
	mul  BinaryOp[T] // ⊗: combines weights along a path
	zero T           // ⊕-identity; also the "no edge" marker in matrices
	one  T           // ⊗-identity; also the distance-to-self value
}

// New constructs a Semiring from the two operations and two constants.
// Stage 1 (Validate): both callables must be non-nil → ErrNilOperation.
// Stage 2 (Sample):   if WithSamples was supplied, spot-check the semiring
// laws on the probe values → wrapped ErrLawViolation on failure.
// Stage 3 (Finalize): return the immutable value.
//
// The laws themselves (associativity, commutativity of ⊕, distributivity,
// annihilation by zero) remain the caller's contract; sampling catches
// gross mistakes, not all violations.
// Complexity: O(1) without samples, O(s³) over s probe values with them.
func New[T comparable](add, mul BinaryOp[T], zero, one T, opts ...Option[T]) (Semiring[T], error) {
	// Validate the callables first; everything downstream dereferences them.
	if add == nil || mul == nil {
		return Semiring[T]{}, ErrNilOperation
	}

	// Collect options (currently: law-check samples).
	cfg := gatherOptions(opts)

	// Assemble the value before sampling so Verify can exercise it as-is.
	s := Semiring[T]{add: add, mul: mul, zero: zero, one: one}

	// Optional sampled law verification.
	if len(cfg.samples) > 0 {
		if err := Verify(s, cfg.samples...); err != nil {
			return Semiring[T]{}, err
		}
	}

	return s, nil
}

// Add applies ⊕ to a and b. Complexity: O(1) plus the callable's own cost.
func (s Semiring[T]) Add(a, b T) T { return s.add(a, b) }

// Mul applies ⊗ to a and b. Complexity: O(1) plus the callable's own cost.
func (s Semiring[T]) Mul(a, b T) T { return s.mul(a, b) }

// Zero returns 0̄, the ⊕-identity. In weight matrices it doubles as the
// explicit "no edge" marker — never hard-code a sentinel like +Inf, ask the
// semiring instead.
func (s Semiring[T]) Zero() T { return s.zero }

// One returns 1̄, the ⊗-identity (distance-to-self under min-plus).
func (s Semiring[T]) One() T { return s.one }

// IsZero reports whether v equals 0̄, i.e. marks an absent edge or an
// unreached vertex. Complexity: O(1).
func (s Semiring[T]) IsZero(v T) bool { return v == s.zero }
