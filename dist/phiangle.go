// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// PhiAngle draws orbital phase angles from the true phase density
//
//	f(φ | e) = (1−e²)^(3/2) / (2π·(1+e·cos φ)²),   φ ∈ [0, 2π)
//
// conditional on a per-draw eccentricity sequence: draw k uses ecc[k].
//
// Inverse-CDF sampling does not apply here — the density changes with
// every draw — so PhiAngle uses envelope rejection sampling instead:
// c = (1−e²)/(2π·(1−e)²) dominates the density everywhere (the maximum at
// φ = π is (1−e²)^(3/2)/(2π·(1−e)²) ≤ c), so a proposal Φ ~ Uniform over
// the window is accepted when an independent p ~ Uniform(0, c) satisfies
// p ≤ f(Φ | e). Accepted draws are exactly distributed according to
// f(· | e).
//
// The loop is bounded (DefaultMaxRejectIter / WithMaxRejectIter) and
// exhaustion surfaces as ErrRejectionTimeout.
type PhiAngle struct {
	ecc []float64
}

// NewPhiAngle builds a phase-angle sampler over the given eccentricity
// sequence. Returns ErrInvalidEccentricity if any value falls outside
// [0, 1); the envelope constant diverges at e = 1.
func NewPhiAngle(ecc []float64) (*PhiAngle, error) {
	for k, e := range ecc {
		if math.IsNaN(e) || e < 0 || e >= 1 {
			return nil, fmt.Errorf("ecc[%d]=%v: %w", k, e, ErrInvalidEccentricity)
		}
	}

	return &PhiAngle{ecc: ecc}, nil
}

// Density evaluates the phase density f(phi | e).
func (p *PhiAngle) Density(phi, e float64) float64 {
	base := 1 + e*math.Cos(phi)

	return math.Pow(1-e*e, 1.5) / (2 * math.Pi * base * base)
}

// Sample draws count phase angles, one per eccentricity, via rejection
// sampling over [xMin, xMax). Proposals are offsets from the window origin,
// i.e. drawn on [0, xMax−xMin); the canonical window is [0, 2π).
//
// Errors: ErrInvalidDomain (xMax <= xMin), ErrDrawCountMismatch
// (count != number of eccentricities), ErrRejectionTimeout.
func (p *PhiAngle) Sample(src rand.Source, xMin, xMax float64, count int, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(xMin) || math.IsNaN(xMax) || xMax <= xMin {
		return nil, fmt.Errorf("bounds [%v, %v]: %w", xMin, xMax, ErrInvalidDomain)
	}
	if count != len(p.ecc) {
		return nil, fmt.Errorf("%d draws for %d eccentricities: %w", count, len(p.ecc), ErrDrawCountMismatch)
	}

	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	base := xMax - xMin
	out := make([]float64, count)

	for k := 0; k < count; k++ {
		e := p.ecc[k]
		// Dominating envelope for this eccentricity.
		c := (1 - e*e) / (2 * math.Pi * (1 - e) * (1 - e))

		accepted := false
		for iter := 0; iter < o.maxRejectIter; iter++ {
			phi := u.Rand() * base
			if u.Rand()*c <= p.Density(phi, e) {
				out[k] = phi
				accepted = true

				break
			}
		}
		if !accepted {
			return nil, fmt.Errorf("draw %d (e=%v) after %d proposals: %w", k, e, o.maxRejectIter, ErrRejectionTimeout)
		}
	}

	return out, nil
}
