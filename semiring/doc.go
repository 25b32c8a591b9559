// Package semiring defines the algebraic structure that parameterizes every
// generalized algorithm in this module: a semiring (S, ⊕, ⊗, 0̄, 1̄).
//
// What & Why
//
//   - What is a semiring?
//     A set S with two binary operations — "addition" ⊕ and "multiplication"
//     ⊗ — and two distinguished constants 0̄ and 1̄, such that:
//
//   - ⊕ is associative and commutative, with identity 0̄;
//
//   - ⊗ is associative, with identity 1̄;
//
//   - ⊗ distributes over ⊕ on both sides;
//
//   - 0̄ annihilates under ⊗ (0̄ ⊗ x = x ⊗ 0̄ = 0̄).
//
//   - Why it matters here:
//     Shortest paths, widest paths, reachability and path counting are all
//     the same computation over different semirings. ⊗ combines weights
//     along a path; ⊕ combines alternatives between paths. Swapping the
//     semiring swaps the problem while the algorithm stays fixed.
//
// Predefined instances
//
//   - ShortestPath   (min,  +,  +Inf,  0)    — classic min-plus distances
//   - LongestPath    (max,  +,  -Inf,  0)    — critical-path lengths
//   - WidestPath     (max, min,  0,   +Inf)  — bottleneck capacities
//   - Reachability   (OR,  AND, false, true) — boolean transitive closure
//   - PathCount      ( +,   ×,   0,    1)    — walk counting (see its doc)
//
// Law checking
//
//	The semiring laws are a CONTRACT, not a runtime invariant: they cannot
//	be decided from two opaque callables. Violating them silently degrades
//	results. New therefore accepts WithSamples(vals...) to spot-check the
//	laws on caller-supplied probe values at construction time; a failed
//	sample returns an error wrapping ErrLawViolation naming the law and
//	operands. No sampling happens without WithSamples — construction of a
//	known-good instance stays allocation-free and silent.
//
// Error Conditions
//
//   - ErrNilOperation — New received a nil add or multiply callable.
//   - ErrLawViolation — a sampled law check failed (wrapped with detail).
//
// All values and operations are pure; a Semiring carries no internal state
// beyond its four members and is safe to copy and share across goroutines.
//
// For examples of usage, see example_test.go in this package.
package semiring
