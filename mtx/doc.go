// Package mtx reads and writes weight matrices in the Matrix Market
// coordinate format, the lingua franca of sparse-graph test collections.
//
// Supported on input: `matrix coordinate real|integer|pattern
// general|symmetric`. Comment lines start with '%'; indices are 1-based;
// pattern files carry no value column and every listed entry becomes weight
// 1. A symmetric header mirrors each entry across the diagonal.
//
// Translation into this module's conventions is explicit: Read takes the
// TARGET semiring and fills absent entries with its zero and the diagonal
// with its one — no hard-coded +Inf sentinel, per the module-wide "no edge
// is the semiring's own zero" rule. Rectangular headers are squared up to
// max(rows, cols), matching how graph collections use the format.
//
// Write emits `coordinate real general`: every off-diagonal entry that is
// not the semiring's zero, in row-major order, 1-based.
//
// Error Conditions
//
//   - ErrBadHeader   — missing or malformed "%%MatrixMarket" banner.
//   - ErrUnsupported — object/format/field/symmetry outside the set above.
//   - ErrBadEntry    — unparsable size or entry line, or 1-based index out
//     of range.
//   - ErrTruncated   — fewer entries than the size line promised.
//
// This package is an external collaborator (fixture loading), not part of
// the algebraic core; nothing in closure/ or mst/ depends on it.
package mtx
