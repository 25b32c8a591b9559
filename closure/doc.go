// Package closure implements the generalized shortest-distance closure: one
// fixed-point iteration scheme that, parameterized only by a semiring,
// computes all-pairs (APSP) or single-source (SSSP) "distances".
//
// What & Why
//
//   - The core identity:
//     Under a semiring (⊕, ⊗, 0̄, 1̄), the best value over all paths of
//     length ≤ r+1 satisfies
//
//     L⁽ʳ⁺¹⁾[i][j] = ⊕ₖ  L⁽ʳ⁾[i][k] ⊗ W[k][j]
//
//     which is exactly a matrix product with (+, ×) replaced by (⊕, ⊗).
//     Since a simple shortest path in an n-vertex graph has at most n−1
//     edges, n−1 rounds starting from L = W reach the fixed point.
//
//   - The SSSP specialization:
//     Fixing a source collapses the matrix to a row vector and each round to
//
//     d⁽ʳ⁺¹⁾[j] = ⊕ᵢ  d⁽ʳ⁾[i] ⊗ W[i][j]
//
//     with d[source] = 1̄ and every other entry 0̄ initially — row `source`
//     of the matrix form, and the algebraic shape of Bellman–Ford
//     relaxation. (Relaxing over W's rows instead of its columns would
//     compute distances TO the source on directed inputs; the row-vector
//     product keeps SSSP equal to the matching APSP row by construction.)
//
//   - Why a FIXED n−1 rounds, no early exit:
//     Transparency. The same iteration count runs for every semiring and
//     both problem shapes, which keeps results structurally comparable and
//     trivially diffable against the classical oracles. Repeated-squaring
//     and convergence detection are deliberate non-goals.
//
// Operations
//
//   - Extend(L, W, sr)        — one APSP round. Time O(n³), space O(n²).
//   - ExtendVector(d, W, sr)  — one SSSP round. Time O(n²), space O(n).
//   - Solve(W, sr, opts...)   — n−1 rounds; returns the n×n matrix, or,
//     with WithSource(s), the distance vector wrapped as a 1×n matrix for
//     interface uniformity.
//   - SlowAPSP(W, sr)         — the APSP branch under its traditional name,
//     exported for verification-oriented callers.
//   - SSSP(W, sr, source)     — the raw []T vector, when no wrapping is wanted.
//
// Conventions consumed from callers
//
//   - W is square and dense; W[i][j] == sr.Zero() means "no edge i→j".
//   - The diagonal follows the semiring: sr.One() is the closure identity
//     (0 under min-plus — the distance to self).
//   - n == 0 yields an empty result; n == 1 yields the identity result
//     after zero rounds.
//
// Tie-break: when several paths achieve the same ⊕-best value the returned
// VALUE is unaffected — the algebra already selects it. Which path attains
// it is not observable here.
//
// Error Conditions
//
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare — malformed W.
//   - matrix.ErrDimensionMismatch — L or d incompatible with W.
//   - ErrSourceOutOfRange — source outside [0, n).
//
// Determinism: fixed ascending loop orders; all working buffers are local
// and never alias caller memory, so concurrent independent calls are safe.
// No recovery is attempted anywhere — results are deterministic functions
// of the input, so a failure would simply recur on retry.
//
// For examples of usage, see example_test.go in this package.
package closure
