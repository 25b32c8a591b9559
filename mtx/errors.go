// SPDX-License-Identifier: MIT
// Package mtx: sentinel error set.

package mtx

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed "%%MatrixMarket" banner.
	ErrBadHeader = errors.New("mtx: malformed MatrixMarket header")

	// ErrUnsupported indicates a well-formed banner requesting an
	// object/format/field/symmetry this reader does not handle (e.g. array
	// format, complex field, skew-symmetric).
	ErrUnsupported = errors.New("mtx: unsupported MatrixMarket variant")

	// ErrBadEntry indicates an unparsable size or data line, or an index
	// outside the declared dimensions.
	ErrBadEntry = errors.New("mtx: malformed entry")

	// ErrTruncated indicates the stream ended before the declared number of
	// entries was read.
	ErrTruncated = errors.New("mtx: truncated file")
)
