// Package matrix provides the dense containers consumed by every algorithm
// in this module: a generic, row-major Dense[T] for weight matrices,
// distance matrices and the one-row vectors the SSSP closure returns.
//
// Conventions
//
//   - Weight matrices are square n×n; entry (i, j) is the weight of the
//     directed edge i→j, or the consuming semiring's zero when no edge
//     exists. The container itself is value-agnostic: it never interprets
//     entries and carries no sentinel of its own — "no edge" is ALWAYS the
//     semiring's zero, supplied explicitly by the caller (NewDense's fill).
//   - Distance results reuse the same container: n×n for APSP, 1×n for the
//     SSSP row. This keeps generalized output directly diffable against the
//     classical oracles.
//   - n == 0 is legal and yields an empty matrix; the closure's empty-input
//     edge case depends on it. Negative dimensions are ErrBadShape.
//
// Aliasing
//
//	At/Set/Clone/ToRows never alias caller memory. RowView is the one
//	deliberate exception: it exposes the backing row slice so the cubic
//	closure kernels avoid a copy per access. Treat RowView results as
//	read-only borrows scoped to one invocation.
//
// Error Conditions
//
//   - ErrBadShape          — negative dimension at construction.
//   - ErrOutOfRange        — row/column index outside bounds (At/Set/RowView).
//   - ErrDimensionMismatch — ragged input rows, or operands whose shapes
//     disagree (validators).
//   - ErrNonSquare         — square matrix required but r ≠ c.
//   - ErrNilMatrix         — nil *Dense passed to a validator.
//
// All errors are package-level sentinels matched via errors.Is; methods
// never panic on user-triggered conditions.
package matrix
