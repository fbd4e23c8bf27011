// SPDX-License-Identifier: MIT

package orbit

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/astrokit/binarystat/dist"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxPeriodRetries caps the period-floor accept/reject loop;
	// exhaustion surfaces as ErrRejectionTimeout.
	DefaultMaxPeriodRetries = 10_000

	// DefaultAxisGridSize is the CDF grid resolution for the single-draw
	// log-uniform sample of the inner semimajor axis.
	DefaultAxisGridSize = 1_000
)

const (
	panicRetriesInvalid  = "orbit: WithMaxPeriodRetries: budget must be > 0"
	panicAxisGridInvalid = "orbit: WithAxisGridSize: grid needs at least 2 points"
)

// Option mutates internal sampler options.
type Option func(*options)

type options struct {
	maxRetries int
	gridSize   int
}

// WithMaxPeriodRetries overrides the period-floor retry budget.
// Panics if n <= 0: an unbounded loop is deliberately not offered.
func WithMaxPeriodRetries(n int) Option {
	if n <= 0 {
		panic(panicRetriesInvalid)
	}

	return func(o *options) {
		o.maxRetries = n
	}
}

// WithAxisGridSize overrides the CDF grid resolution of the log-uniform
// inner-axis draw. Panics if n < 2 (a one-point grid cannot be
// interpolated).
func WithAxisGridSize(n int) Option {
	if n < 2 {
		panic(panicAxisGridInvalid)
	}

	return func(o *options) {
		o.gridSize = n
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		maxRetries: DefaultMaxPeriodRetries,
		gridSize:   DefaultAxisGridSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// InnerSemimajorAxis draws the semimajor axis of a hidden companion's
// inner orbit from its host's parallax and the inner pair's mass.
//
// Outline:
//  1. Draw aIn from the log-uniform prior on (MinInnerAxis, parallax),
//     in internal angular units.
//  2. Compute the implied period P = sqrt(aIn³ / innerMass).
//  3. Retry the draw while P < MinPeriodYears — sub-floor periods are
//     physically implausible for an unresolved companion.
//  4. Convert the accepted draw to parsecs via AstronomicalUnit.
//
// Errors: ErrInvalidDomain when parallax ≤ MinInnerAxis (the prior's
// support would be empty) or innerMass ≤ 0; ErrRejectionTimeout when the
// retry budget runs out. The log-uniform support is strictly positive, so
// the period radicand cannot go negative here.
func InnerSemimajorAxis(src rand.Source, parallax, innerMass float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(parallax) || parallax <= MinInnerAxis {
		return 0, fmt.Errorf("parallax=%v (prior support (%v, parallax)): %w", parallax, MinInnerAxis, ErrInvalidDomain)
	}
	if math.IsNaN(innerMass) || innerMass <= 0 {
		return 0, fmt.Errorf("innerMass=%v: %w", innerMass, ErrInvalidDomain)
	}

	logUniform := dist.NewLogarithmic()
	for iter := 0; iter < o.maxRetries; iter++ {
		draw, err := logUniform.Sample(src, MinInnerAxis, parallax, 1, dist.WithGridSize(o.gridSize))
		if err != nil {
			return 0, fmt.Errorf("inner-axis draw: %w", err)
		}
		aIn := draw[0]

		if period := math.Sqrt(aIn * aIn * aIn / innerMass); period >= MinPeriodYears {
			return aIn * AstronomicalUnit, nil
		}
	}

	return 0, fmt.Errorf("no draw with period >= %v after %d attempts: %w", MinPeriodYears, o.maxRetries, ErrRejectionTimeout)
}
