// SPDX-License-Identifier: MIT

// Package dist: concrete density laws.
// Each constructor binds its closed-form parameters into a Law closure and
// returns a ready Distribution; normalization, CDF and sampling are shared
// engine behavior (distribution.go).

package dist

import (
	"fmt"
	"math"
)

// NewUniform returns the uniform law: constant 1/(b−a) on [a, b], 0
// outside. Returns ErrInvalidDomain when b <= a or a bound is NaN.
func NewUniform(a, b float64) (*Distribution, error) {
	if math.IsNaN(a) || math.IsNaN(b) || b <= a {
		return nil, fmt.Errorf("uniform bounds [%v, %v]: %w", a, b, ErrInvalidDomain)
	}
	height := 1 / (b - a)

	return &Distribution{law: func(x float64) float64 {
		if x < a || x > b {
			return 0
		}

		return height
	}}, nil
}

// NewUnboundedUniform returns the degenerate uniform law: the constant
// function 1 on all of ℝ. Only meaningful under grid normalization, where
// the sampling window supplies the effective support.
func NewUnboundedUniform() *Distribution {
	return &Distribution{law: func(float64) float64 { return 1 }}
}

// NewThermal returns the thermal eccentricity prior f(x) = 2x, zero below
// the origin. Unnormalized; the engine normalizes over the sampling grid,
// which supplies the [0, 1] eccentricity support. No upper cutoff: a hard
// zero at the grid's right edge would stall the CDF there and block
// inversion.
func NewThermal() *Distribution {
	return &Distribution{law: func(x float64) float64 {
		if x < 0 {
			return 0
		}

		return 2 * x
	}}
}

// NewPowerLaw returns f(x) = c·x^α with both parameters bound at
// construction. Support is problem-dependent and supplied by the sampling
// window.
func NewPowerLaw(c, alpha float64) *Distribution {
	return &Distribution{law: func(x float64) float64 {
		return c * math.Pow(x, alpha)
	}}
}

// NewLogarithmic returns f(x) = 1/x on (0, ∞), the log-uniform prior used
// for semimajor axes. Zero at and below x = 0 so that grids touching the
// origin stay finite.
func NewLogarithmic() *Distribution {
	return &Distribution{law: func(x float64) float64 {
		if x <= 0 {
			return 0
		}

		return 1 / x
	}}
}

// NewSine returns the isotropic inclination prior f(i) = sin(i) on
// [0, π/2], 0 outside.
func NewSine() *Distribution {
	return &Distribution{law: func(x float64) float64 {
		if x < 0 || x > math.Pi/2 {
			return 0
		}

		return math.Sin(x)
	}}
}
