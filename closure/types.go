// SPDX-License-Identifier: MIT

// Package closure: sentinel errors and functional options.
package closure

import "errors"

// ErrSourceOutOfRange indicates that WithSource (or SSSP) received a vertex
// index outside [0, n) for the given matrix.
var ErrSourceOutOfRange = errors.New("closure: source vertex out of range")

// noSource marks "no source selected" inside options; exported API never
// sees this value.
const noSource = -1

// options holds the internal configuration assembled from Option values.
type options struct {
	source int // vertex index for the SSSP branch, or noSource for APSP
}

// Option mutates the internal options during Solve.
type Option func(*options)

// WithSource switches Solve to the single-source branch rooted at vertex s.
// The index is validated against the matrix inside Solve, not here, so an
// out-of-range s surfaces as ErrSourceOutOfRange rather than a panic.
func WithSource(s int) Option {
	return func(o *options) { o.source = s }
}

// gatherOptions folds the supplied Option values into the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts []Option) options {
	cfg := options{source: noSource}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
