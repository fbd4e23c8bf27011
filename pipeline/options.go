// SPDX-License-Identifier: MIT

// Package pipeline: functional configuration shared by the stages.

package pipeline

import (
	"github.com/astrokit/binarystat/dist"
	"github.com/astrokit/binarystat/orbit"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSampleGrid is the CDF grid resolution used for the orbital
	// prior draws. Decoupled from catalog size: a three-row catalog still
	// needs a fine CDF to invert.
	DefaultSampleGrid = 1_000
)

const (
	panicGridInvalid    = "pipeline: WithSampleGrid: grid needs at least 2 points"
	panicRejectInvalid  = "pipeline: WithMaxRejectIter: budget must be > 0"
	panicRetriesInvalid = "pipeline: WithMaxPeriodRetries: budget must be > 0"
)

// Option mutates internal pipeline options.
type Option func(*options)

type options struct {
	gridSize      int
	maxRejectIter int
	periodRetries int
}

// WithSampleGrid overrides the CDF grid resolution for prior draws.
// Panics if n < 2.
func WithSampleGrid(n int) Option {
	if n < 2 {
		panic(panicGridInvalid)
	}

	return func(o *options) {
		o.gridSize = n
	}
}

// WithMaxRejectIter overrides the phase-angle rejection budget.
// Panics if n <= 0.
func WithMaxRejectIter(n int) Option {
	if n <= 0 {
		panic(panicRejectInvalid)
	}

	return func(o *options) {
		o.maxRejectIter = n
	}
}

// WithMaxPeriodRetries overrides the inner-axis period-floor retry budget.
// Panics if n <= 0.
func WithMaxPeriodRetries(n int) Option {
	if n <= 0 {
		panic(panicRetriesInvalid)
	}

	return func(o *options) {
		o.periodRetries = n
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		gridSize:      DefaultSampleGrid,
		maxRejectIter: dist.DefaultMaxRejectIter,
		periodRetries: orbit.DefaultMaxPeriodRetries,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
