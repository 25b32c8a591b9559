// SPDX-License-Identifier: MIT

// Package semiring: predefined instances for the classic path problems.
// Each constructor builds the instance directly — the laws of these five are
// textbook facts, so no sampling runs here.
package semiring

import "math"

// minFloat is ⊕ for the min-plus algebra. Written out instead of math.Min
// to keep tie behavior trivially obvious: on equality the LEFT operand wins,
// which downstream tie-break rules rely on.
func minFloat(a, b float64) float64 {
	if b < a {
		return b
	}

	return a
}

// maxFloat is ⊕ for the max-based algebras; left operand wins ties.
func maxFloat(a, b float64) float64 {
	if b > a {
		return b
	}

	return a
}

// addFloat is ⊗ for the min-plus and max-plus algebras.
// +Inf + w stays +Inf, so "no edge" propagates correctly through products.
func addFloat(a, b float64) float64 { return a + b }

// ShortestPath returns the min-plus semiring (min, +, +Inf, 0) over float64.
// Closure under it yields shortest-path distances; +Inf marks "no edge" and
// "unreachable", 0 is the distance to self.
func ShortestPath() Semiring[float64] {
	return Semiring[float64]{add: minFloat, mul: addFloat, zero: math.Inf(1), one: 0}
}

// LongestPath returns the max-plus semiring (max, +, -Inf, 0) over float64.
// Meaningful on DAGs only — positive cycles diverge, exactly as in the
// classical critical-path setting.
func LongestPath() Semiring[float64] {
	return Semiring[float64]{add: maxFloat, mul: addFloat, zero: math.Inf(-1), one: 0}
}

// WidestPath returns the bottleneck semiring (max, min, 0, +Inf) over
// float64. Closure under it yields the maximum bottleneck capacity between
// vertices; 0 marks "no edge", +Inf is the capacity to self.
func WidestPath() Semiring[float64] {
	return Semiring[float64]{add: maxFloat, mul: minFloat, zero: 0, one: math.Inf(1)}
}

// Reachability returns the boolean semiring (OR, AND, false, true).
// Closure under it is the transitive-closure / reachability relation.
func Reachability() Semiring[bool] {
	return Semiring[bool]{
		add:  func(a, b bool) bool { return a || b },
		mul:  func(a, b bool) bool { return a && b },
		zero: false,
		one:  true,
	}
}

// PathCount returns the counting semiring (+, ×, 0, 1) over float64.
// Under the diagonal-one matrix convention the closure counts walks of
// length exactly n−1 in the graph augmented with a unit self-loop per
// vertex — ⊕ is not idempotent, so every shorter walk is counted once per
// self-loop padding rather than once. float64 keeps the instance uniform
// with the others; counts stay exact up to 2⁵³.
func PathCount() Semiring[float64] {
	return Semiring[float64]{
		add:  func(a, b float64) float64 { return a + b },
		mul:  func(a, b float64) float64 { return a * b },
		zero: 0,
		one:  1,
	}
}
