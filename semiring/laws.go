// SPDX-License-Identifier: MIT
// Package semiring: sampled verification of the semiring laws.
//
// Purpose:
//   - Catch grossly wrong (add, multiply, zero, one) combinations early,
//     at construction, instead of letting them silently corrupt closures.
//
// Contract:
//   - Sampling proves nothing in general; it only refutes. A passing Verify
//     does NOT certify the laws — it certifies them on the probe set.

package semiring

import "fmt"

// Verify spot-checks the semiring laws of s on the given probe values.
// Checked, for all sampled a, b, c:
//
//	add(a, add(b, c)) == add(add(a, b), c)    ⊕ associativity
//	add(a, b)         == add(b, a)            ⊕ commutativity
//	add(a, zero)      == a                    0̄ is ⊕-identity
//	mul(a, mul(b, c)) == mul(mul(a, b), c)    ⊗ associativity
//	mul(a, one) == a && mul(one, a) == a      1̄ is ⊗-identity
//	mul(a, add(b, c)) == add(mul(a,b), mul(a,c))  left distributivity
//	mul(add(b, c), a) == add(mul(b,a), mul(c,a))  right distributivity
//	mul(zero, a) == zero && mul(a, zero) == zero  0̄ annihilates
//
// Returns nil when every sampled instance holds, otherwise an error
// wrapping ErrLawViolation that names the first violated law and operands.
// Complexity: O(s³) for s = len(samples).
func Verify[T comparable](s Semiring[T], samples ...T) error {
	// Nothing to refute without probes.
	if len(samples) == 0 {
		return nil
	}

	// Single-operand laws: identities and annihilation.
	for _, a := range samples {
		if got := s.add(a, s.zero); got != a {
			return lawErrorf("add identity", "add(%v, zero) = %v, want %v", a, got, a)
		}
		if got := s.mul(a, s.one); got != a {
			return lawErrorf("mul identity", "mul(%v, one) = %v, want %v", a, got, a)
		}
		if got := s.mul(s.one, a); got != a {
			return lawErrorf("mul identity", "mul(one, %v) = %v, want %v", a, got, a)
		}
		if got := s.mul(s.zero, a); got != s.zero {
			return lawErrorf("zero annihilation", "mul(zero, %v) = %v, want zero", a, got)
		}
		if got := s.mul(a, s.zero); got != s.zero {
			return lawErrorf("zero annihilation", "mul(%v, zero) = %v, want zero", a, got)
		}
	}

	// Two-operand laws: ⊕ commutativity.
	for _, a := range samples {
		for _, b := range samples {
			if x, y := s.add(a, b), s.add(b, a); x != y {
				return lawErrorf("add commutativity", "add(%v, %v) = %v but add(%v, %v) = %v", a, b, x, b, a, y)
			}
		}
	}

	// Three-operand laws: associativity and distributivity.
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				if x, y := s.add(a, s.add(b, c)), s.add(s.add(a, b), c); x != y {
					return lawErrorf("add associativity", "a=%v b=%v c=%v: %v != %v", a, b, c, x, y)
				}
				if x, y := s.mul(a, s.mul(b, c)), s.mul(s.mul(a, b), c); x != y {
					return lawErrorf("mul associativity", "a=%v b=%v c=%v: %v != %v", a, b, c, x, y)
				}
				if x, y := s.mul(a, s.add(b, c)), s.add(s.mul(a, b), s.mul(a, c)); x != y {
					return lawErrorf("left distributivity", "a=%v b=%v c=%v: %v != %v", a, b, c, x, y)
				}
				if x, y := s.mul(s.add(b, c), a), s.add(s.mul(b, a), s.mul(c, a)); x != y {
					return lawErrorf("right distributivity", "a=%v b=%v c=%v: %v != %v", a, b, c, x, y)
				}
			}
		}
	}

	return nil
}

// lawErrorf wraps ErrLawViolation with the violated law and formatted detail.
func lawErrorf(law, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", law, fmt.Sprintf(format, args...), ErrLawViolation)
}
