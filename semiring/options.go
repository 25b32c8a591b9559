// SPDX-License-Identifier: MIT

// Package semiring: functional configuration for New.
// Mirrors the module-wide convention: unexported option state, WithX
// constructors, a gatherOptions helper enforcing invariants.
package semiring

// options holds the internal configuration assembled from Option values.
type options[T comparable] struct {
	samples []T // probe values for sampled law checks; empty disables them
}

// Option mutates the internal options during New.
type Option[T comparable] func(*options[T])

// WithSamples enables sampled law verification at construction, using vals
// as the probe set. Checks run over all triples of vals, so keep the set
// small (three to five representative values, ideally including zero and
// one of the target semiring). Passing no values is a no-op.
func WithSamples[T comparable](vals ...T) Option[T] {
	return func(o *options[T]) {
		o.samples = append(o.samples, vals...)
	}
}

// gatherOptions folds the supplied Option values into a fresh options.
// Complexity: O(len(opts)).
func gatherOptions[T comparable](opts []Option[T]) options[T] {
	var cfg options[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
