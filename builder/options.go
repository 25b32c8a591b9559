// SPDX-License-Identifier: MIT

// Package builder: sentinel errors and functional configuration.
package builder

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadOrder is returned when the requested matrix order is negative.
	ErrBadOrder = errors.New("builder: order must be >= 0")

	// ErrBadDensity is returned when the edge density is outside [0, 1].
	ErrBadDensity = errors.New("builder: density outside [0,1]")

	// ErrBadWeightRange is returned when the weight interval is inverted or
	// a bound is NaN/Inf.
	ErrBadWeightRange = errors.New("builder: invalid weight range")
)

// Defaults (single source of truth).
const (
	defaultDensity  = 0.3  // ~30% of ordered pairs carry an edge
	defaultWeightLo = 1.0  // inclusive lower weight bound
	defaultWeightHi = 10.0 // exclusive upper weight bound
)

// options holds the internal configuration assembled from Option values.
type options struct {
	seed      int64
	density   float64
	weightLo  float64
	weightHi  float64
	symmetric bool
	connected bool
}

// Option mutates the internal options during Random.
type Option func(*options)

// WithSeed fixes the RNG seed. Zero selects the package default seed, so
// every call is deterministic whether or not this option appears.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDensity sets the probability that any given off-diagonal pair carries
// an edge. Validated in Random, not here (options stay panic-free).
func WithDensity(p float64) Option {
	return func(o *options) { o.density = p }
}

// WithWeightRange draws edge weights uniformly from [lo, hi). lo == hi
// degenerates to the constant weight lo, which is handy for tie-heavy
// testing.
func WithWeightRange(lo, hi float64) Option {
	return func(o *options) { o.weightLo, o.weightHi = lo, hi }
}

// WithSymmetric mirrors every generated edge, producing an undirected
// matrix (required by the MST algorithms).
func WithSymmetric() Option {
	return func(o *options) { o.symmetric = true }
}

// WithConnected threads a chain spine 0—1—…—(n−1) through the matrix (both
// directions, so the chain is traversable from any vertex) before sprinkling
// random edges. Guarantees connectivity at any density.
func WithConnected() Option {
	return func(o *options) { o.connected = true }
}

// gatherOptions folds the supplied Option values into the defaults and
// validates the result. Complexity: O(len(opts)).
func gatherOptions(opts []Option) (options, error) {
	cfg := options{
		density:  defaultDensity,
		weightLo: defaultWeightLo,
		weightHi: defaultWeightHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate: density is a probability.
	if cfg.density < 0 || cfg.density > 1 || math.IsNaN(cfg.density) {
		return options{}, fmt.Errorf("density %v: %w", cfg.density, ErrBadDensity)
	}
	// Validate: weight interval is finite and ordered.
	if cfg.weightLo > cfg.weightHi ||
		math.IsNaN(cfg.weightLo) || math.IsInf(cfg.weightLo, 0) ||
		math.IsNaN(cfg.weightHi) || math.IsInf(cfg.weightHi, 0) {
		return options{}, fmt.Errorf("range [%v,%v): %w", cfg.weightLo, cfg.weightHi, ErrBadWeightRange)
	}

	return cfg, nil
}
