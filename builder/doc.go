// Package builder generates reproducible random weight matrices for tests,
// examples and benchmarks.
//
// Every generated matrix follows the module-wide conventions: absent edges
// hold the target semiring's zero, the diagonal holds its one, and all
// randomness flows from an explicit seed — the same seed always produces
// the same matrix, on every platform.
//
// Options (functional, all with documented defaults):
//
//   - WithSeed(seed)            — RNG seed; 0 selects the fixed default.
//   - WithDensity(p)            — probability of each off-diagonal edge,
//     p ∈ [0, 1]. Default 0.3.
//   - WithWeightRange(lo, hi)   — edge weights drawn uniformly from
//     [lo, hi). Default [1, 10).
//   - WithSymmetric()           — mirror every generated edge (undirected
//     graphs; required by the MST algorithms).
//   - WithConnected()           — add a chain spine 0—1—…—(n−1) first, so
//     the result is connected regardless of density.
//
// Error Conditions
//
//   - ErrBadOrder       — n < 0.
//   - ErrBadDensity     — density outside [0, 1].
//   - ErrBadWeightRange — lo > hi, or a non-finite bound.
//
// The package is a test collaborator, not part of the algebraic core.
package builder
