// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/astrokit/binarystat/binaries"
	"github.com/astrokit/binarystat/orbit"
)

// Combine folds the three companion contributions of each system into a
// single projected 2D relative velocity and the Chae v-tilde statistic:
//
//	VEL2Dx = vx + η_A·vx_A + η_B·vx_B      (same for y)
//	VEL2D  = sqrt(VEL2Dx² + VEL2Dy²)
//	ṽ_Chae = VEL2D / sqrt(G·M/sep)
//
// Hidden companions enter weighted by their photometric distance η, so
// systems without companions (η = 0) reduce to the outer pair alone.
// Requires all three slots deconstructed.
func Combine(cat binaries.Catalog) error {
	if len(cat) == 0 {
		return binaries.ErrEmptyCatalog
	}

	for i, sys := range cat {
		if sys.Separation <= 0 || sys.Outer.Mass <= 0 {
			return fmt.Errorf("system %d: separation=%v mass=%v: %w",
				i, sys.Separation, sys.Outer.Mass, binaries.ErrMissingObservation)
		}

		sys.Vel2DX = sys.Outer.VX + sys.HiddenA.Eta*sys.HiddenA.VX + sys.HiddenB.Eta*sys.HiddenB.VX
		sys.Vel2DY = sys.Outer.VY + sys.HiddenA.Eta*sys.HiddenA.VY + sys.HiddenB.Eta*sys.HiddenB.VY
		sys.Vel2DChae = math.Hypot(sys.Vel2DX, sys.Vel2DY)
		sys.VTildeChae = sys.Vel2DChae / math.Sqrt(orbit.GravConst*sys.Outer.Mass/sys.Separation)
	}

	return nil
}

// Run executes the full hidden-tertiary reconstruction over a catalog:
//
//  1. Assign hidden companions (fraction frac) and the derived masses.
//  2. Sample orbital priors for the outer and both hidden slots.
//  3. Deconstruct the outer slot, then both hidden slots (the outer
//     semimajor axis feeds the hidden slots' photometric distances).
//  4. Fill the Hernandez v-tilde per slot (hidden separations now exist).
//  5. Combine the three contributions into VEL2D and the Chae v-tilde.
//
// The catalog is mutated in place; on error it is left partially filled
// exactly up to the failing stage and row.
func Run(src rand.Source, cat binaries.Catalog, frac float64, opts ...Option) error {
	if err := binaries.AssignHiddenCompanions(src, cat, frac); err != nil {
		return err
	}

	slots := []binaries.Slot{binaries.Outer, binaries.HiddenA, binaries.HiddenB}
	for _, slot := range slots {
		if err := SampleOrbits(src, cat, slot, opts...); err != nil {
			return err
		}
	}
	for _, slot := range slots {
		if err := Deconstruct(src, cat, slot, opts...); err != nil {
			return err
		}
	}
	for _, slot := range slots {
		if err := ComputeVTilde(cat, slot); err != nil {
			return err
		}
	}

	return Combine(cat)
}
