// SPDX-License-Identifier: MIT

package binaries

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/astrokit/binarystat/dist"
)

// Hidden-companion assignment parameters, single source of truth.
const (
	// DeltaMagGamma is the power-law exponent γ of the magnitude-difference
	// prior; its coefficient is (1+γ)/12^γ.
	DeltaMagGamma = -0.6

	// DeltaMagLow / DeltaMagHigh bound the magnitude-difference draw.
	DeltaMagLow  = 29.0
	DeltaMagHigh = 30.0

	// ProbBothGivenCompanion is the probability that both stars host a
	// hidden companion, given the system hosts any.
	ProbBothGivenCompanion = 0.3

	// ProbFainterGivenSingle is the probability that a single hidden
	// companion orbits the fainter star (the larger magnitude).
	ProbFainterGivenSingle = 0.4 / 0.7

	// MagMassSlope and SolarAbsMag parametrize the mass–luminosity
	// relation m = 10^(MagMassSlope·(SolarAbsMag − mag)).
	MagMassSlope = 0.0725
	SolarAbsMag  = 4.76

	// LightRatioSlope sets the light-ratio split κ = 1/(1 + 10^(−0.4·Δmag)).
	LightRatioSlope = 0.4

	// deltaMagGridSize is the CDF resolution for single Δmag draws.
	deltaMagGridSize = 1_000
)

// AssignHiddenCompanions tags each system in the catalog as hosting hidden
// companions with probability frac and fills in the per-slot masses,
// parallaxes and bookkeeping the velocity pipelines consume.
//
// Per system:
//  1. Tag: with-companion w.p. frac. Given a companion, both stars host
//     one w.p. ProbBothGivenCompanion; otherwise a single companion
//     orbits the fainter star w.p. ProbFainterGivenSingle, else the
//     brighter.
//  2. Each hosting star's blended light is split host/companion by a
//     light ratio κ drawn through the power-law Δmag prior; component
//     magnitudes are −2.5·log10(κ)+mag and −2.5·log10(1−κ)+mag.
//  3. Magnitudes become masses through the mass–luminosity relation;
//     non-hosting stars carry their full blended mass with zero
//     companion mass.
//  4. Bookkeeping: slot masses (inner-pair sums), total system mass,
//     slot parallaxes, the outer slot's observed 2D separation, and the
//     propagated 2D-velocity uncertainty
//     dV2D = (vRA/V2D)·vRAErr + (vDec/V2D)·vDecErr.
//
// Errors: ErrEmptyCatalog, ErrInvalidFraction, and per-row wrapped
// ErrMissingObservation when V2D is not positive. The batch aborts on the
// first failing row (the row index is in the wrapped message).
func AssignHiddenCompanions(src rand.Source, cat Catalog, frac float64) error {
	if len(cat) == 0 {
		return ErrEmptyCatalog
	}
	if math.IsNaN(frac) || frac < 0 || frac > 1 {
		return fmt.Errorf("frac=%v: %w", frac, ErrInvalidFraction)
	}

	rnd := rand.New(src)
	deltaMag := dist.NewPowerLaw((1+DeltaMagGamma)/math.Pow(12, DeltaMagGamma), DeltaMagGamma)

	for i, sys := range cat {
		if sys.V2D <= 0 || math.IsNaN(sys.V2D) {
			return fmt.Errorf("system %d: V2D=%v: %w", i, sys.V2D, ErrMissingObservation)
		}

		if err := assignMasses(src, rnd, deltaMag, sys, frac); err != nil {
			return fmt.Errorf("system %d: %w", i, err)
		}

		sys.HiddenA.Mass = sys.HiddenA.Mass1 + sys.HiddenA.Mass2
		sys.HiddenB.Mass = sys.HiddenB.Mass1 + sys.HiddenB.Mass2
		sys.Outer.Mass = sys.HiddenA.Mass + sys.HiddenB.Mass
		sys.HiddenA.Parallax = sys.Parallax1
		sys.HiddenB.Parallax = sys.Parallax2
		sys.Outer.Separation2D = sys.Separation
		sys.DV2D = (sys.VRA/sys.V2D)*sys.VRAErr + (sys.VDec/sys.V2D)*sys.VDecErr
	}

	return nil
}

// assignMasses decides the companion layout for one system and fills the
// hidden slots' component masses.
func assignMasses(src rand.Source, rnd *rand.Rand, deltaMag *dist.Distribution, sys *System, frac float64) error {
	if rnd.Float64() >= frac {
		sys.Tag = WithoutCompanion
		sys.HiddenA.Mass1, sys.HiddenA.Mass2 = massFromMagnitude(sys.Mag1), 0
		sys.HiddenB.Mass1, sys.HiddenB.Mass2 = massFromMagnitude(sys.Mag2), 0

		return nil
	}

	if rnd.Float64() < ProbBothGivenCompanion {
		sys.Tag = CompanionBoth
		if err := splitStar(src, deltaMag, sys.Mag1, &sys.HiddenA); err != nil {
			return err
		}

		return splitStar(src, deltaMag, sys.Mag2, &sys.HiddenB)
	}

	sys.Tag = CompanionSingle
	// A single companion orbits the fainter star (larger magnitude) with
	// probability ProbFainterGivenSingle, the brighter one otherwise.
	fainterHosts := rnd.Float64() < ProbFainterGivenSingle
	firstHosts := (sys.Mag1 > sys.Mag2) == fainterHosts

	if firstHosts {
		sys.HiddenB.Mass1, sys.HiddenB.Mass2 = massFromMagnitude(sys.Mag2), 0

		return splitStar(src, deltaMag, sys.Mag1, &sys.HiddenA)
	}
	sys.HiddenA.Mass1, sys.HiddenA.Mass2 = massFromMagnitude(sys.Mag1), 0

	return splitStar(src, deltaMag, sys.Mag2, &sys.HiddenB)
}

// splitStar divides one star's blended magnitude into host + companion
// components and stores their masses in the slot record.
func splitStar(src rand.Source, deltaMag *dist.Distribution, mag float64, o *Orbit) error {
	k, err := drawLightRatio(src, deltaMag)
	if err != nil {
		return err
	}

	host := -2.5*math.Log10(k) + mag
	comp := -2.5*math.Log10(1-k) + mag
	o.Mass1, o.Mass2 = massFromMagnitude(host), massFromMagnitude(comp)

	return nil
}

// drawLightRatio samples a magnitude difference from the power-law prior
// and converts it to the host's light fraction κ.
func drawLightRatio(src rand.Source, deltaMag *dist.Distribution) (float64, error) {
	dm, err := deltaMag.Sample(src, DeltaMagLow, DeltaMagHigh, 1, dist.WithGridSize(deltaMagGridSize))
	if err != nil {
		return 0, fmt.Errorf("delta-mag draw: %w", err)
	}

	return 1 / (1 + math.Pow(10, -LightRatioSlope*dm[0])), nil
}

// massFromMagnitude applies the mass–luminosity relation.
func massFromMagnitude(mag float64) float64 {
	return math.Pow(10, MagMassSlope*(SolarAbsMag-mag))
}
