// SPDX-License-Identifier: MIT

// Package dist: functional configuration for sampling.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option state is unexported; public APIs consume ...Option.

package dist

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLowerQuantile / DefaultUpperQuantile bound the open interval
	// of uniform draws fed into the inverse CDF. The sub-interval of (0,1)
	// avoids the CDF-boundary singularities where the discretized inverse
	// is ill-defined.
	DefaultLowerQuantile = 0.001
	DefaultUpperQuantile = 0.999

	// DefaultMaxRejectIter caps every accept/reject loop; exhaustion
	// surfaces as ErrRejectionTimeout rather than spinning forever on a
	// pathological density.
	DefaultMaxRejectIter = 100_000

	// DefaultGridSize = 0 means "grid resolution equals the draw count",
	// the classic inverse-CDF construction. Override with WithGridSize
	// when drawing few samples from a law that needs a fine CDF.
	DefaultGridSize = 0
)

// Internal panic messages (no magic strings).
const (
	panicQuantileInvalid = "dist: WithQuantileWindow: need 0 < lo < hi < 1"
	panicRejectInvalid   = "dist: WithMaxRejectIter: budget must be > 0"
	panicGridInvalid     = "dist: WithGridSize: grid needs at least 2 points"
)

// Option mutates internal sampling options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	lowerQ, upperQ float64 // open draw window inside (0, 1)
	maxRejectIter  int     // accept/reject iteration budget
	gridSize       int     // CDF grid resolution; 0 ⇒ use draw count
}

// WithQuantileWindow overrides the open interval of uniform draws used by
// inverse-CDF sampling. Panics unless 0 < lo < hi < 1.
func WithQuantileWindow(lo, hi float64) Option {
	if !(lo > 0 && hi < 1 && lo < hi) || math.IsNaN(lo) || math.IsNaN(hi) {
		panic(panicQuantileInvalid)
	}

	return func(o *options) {
		o.lowerQ, o.upperQ = lo, hi
	}
}

// WithMaxRejectIter overrides the accept/reject iteration budget.
// Panics if n <= 0: an unbounded loop is deliberately not offered.
func WithMaxRejectIter(n int) Option {
	if n <= 0 {
		panic(panicRejectInvalid)
	}

	return func(o *options) {
		o.maxRejectIter = n
	}
}

// WithGridSize decouples the CDF grid resolution from the draw count.
// Panics if n < 2 (a one-point grid cannot be interpolated).
func WithGridSize(n int) Option {
	if n < 2 {
		panic(panicGridInvalid)
	}

	return func(o *options) {
		o.gridSize = n
	}
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{
		lowerQ:        DefaultLowerQuantile,
		upperQ:        DefaultUpperQuantile,
		maxRejectIter: DefaultMaxRejectIter,
		gridSize:      DefaultGridSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
