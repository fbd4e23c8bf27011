// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/astrokit/binarystat/binaries"
	"github.com/astrokit/binarystat/dist"
	"github.com/astrokit/binarystat/orbit"
)

// SampleOrbits draws the latent orbital variables for one companion slot
// across the whole catalog, in strict order:
//
//	e  ~ Thermal  on [0, 1]
//	i  ~ Sine     on [0, π/2]
//	φ₀ ~ Uniform  on [0, 2π]
//	φ  ~ phase density conditional on (e, φ₀), offset by φ₀
//
// φ must come last: its rejection sampler is parameterized by the already
// materialized eccentricities, and the accepted draw is shifted by φ₀.
//
// Errors: binaries.ErrEmptyCatalog, plus anything the dist engine raises
// (wrapped with the slot).
func SampleOrbits(src rand.Source, cat binaries.Catalog, slot binaries.Slot, opts ...Option) error {
	o := gatherOptions(opts...)
	if len(cat) == 0 {
		return binaries.ErrEmptyCatalog
	}
	n := len(cat)
	grid := dist.WithGridSize(o.gridSize)

	ecc, err := dist.NewThermal().Sample(src, 0, 1, n, grid)
	if err != nil {
		return fmt.Errorf("%v eccentricity: %w", slot, err)
	}

	incl, err := dist.NewSine().Sample(src, 0, math.Pi/2, n, grid)
	if err != nil {
		return fmt.Errorf("%v inclination: %w", slot, err)
	}

	phi0, err := dist.NewUnboundedUniform().Sample(src, 0, 2*math.Pi, n, grid)
	if err != nil {
		return fmt.Errorf("%v reference phase: %w", slot, err)
	}

	phase, err := dist.NewPhiAngle(ecc)
	if err != nil {
		return fmt.Errorf("%v phase sampler: %w", slot, err)
	}
	phi, err := phase.Sample(src, 0, 2*math.Pi, n, dist.WithMaxRejectIter(o.maxRejectIter))
	if err != nil {
		return fmt.Errorf("%v phase: %w", slot, err)
	}

	for i, sys := range cat {
		orb := sys.Slot(slot)
		orb.Eccentricity = ecc[i]
		orb.Inclination = incl[i]
		orb.Phi0 = phi0[i]
		orb.Phi = phi[i] + phi0[i]
	}

	return nil
}

// ComputeVTilde fills the Hernandez v-tilde statistic for one slot, plus
// the 2D velocity it implies against the slot's circular-orbit scale:
//
//	ṽ = VelTilde(φ−φ₀, φ₀, i, e)
//	v2D = ṽ · sqrt(G·M/sep2D)
//
// Requires the slot's mass and 2D separation to be present — run the
// companion assignment first, and for hidden slots the deconstruction
// (their 2D separation is derived, not observed).
func ComputeVTilde(cat binaries.Catalog, slot binaries.Slot) error {
	if len(cat) == 0 {
		return binaries.ErrEmptyCatalog
	}

	for i, sys := range cat {
		orb := sys.Slot(slot)
		if orb.Mass <= 0 || orb.Separation2D <= 0 {
			return fmt.Errorf("system %d %v: mass=%v sep2D=%v: %w",
				i, slot, orb.Mass, orb.Separation2D, binaries.ErrMissingObservation)
		}

		orb.VTilde = dist.VelTilde(orb.Phi-orb.Phi0, orb.Phi0, orb.Inclination, orb.Eccentricity)
		orb.Vel2D = orb.VTilde * math.Sqrt(orbit.GravConst*orb.Mass/orb.Separation2D)
	}

	return nil
}
