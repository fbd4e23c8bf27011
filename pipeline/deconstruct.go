// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/astrokit/binarystat/binaries"
	"github.com/astrokit/binarystat/orbit"
)

// Deconstruct derives the full physical state of one companion slot from
// its sampled orbital angles.
//
// The two slot kinds run the geometry in opposite directions:
//
//   - Outer: the 2D separation is observed, so invert it into r₃D
//     (R3DFrom2D), derive the semimajor axis forward (SemimajorAxis),
//     then the vis-viva velocity and its 2D components.
//
//   - Hidden: only mass and parallax priors are available, so
//     forward-simulate: draw the inner semimajor axis (retrying under the
//     period floor), derive r₃D (InnerR3D), the velocity and components,
//     then the derived 2D separation (Projected2D) and the photometric
//     distance η against the outer axis.
//
// The outer slot must be deconstructed before either hidden slot
// (ErrOuterNotReady otherwise). Errors abort on the first bad row,
// wrapped with system index and slot.
func Deconstruct(src rand.Source, cat binaries.Catalog, slot binaries.Slot, opts ...Option) error {
	o := gatherOptions(opts...)
	if len(cat) == 0 {
		return binaries.ErrEmptyCatalog
	}

	for i, sys := range cat {
		var err error
		if slot.Hidden() {
			err = deconstructHidden(src, sys, slot, o)
		} else {
			err = deconstructOuter(sys)
		}
		if err != nil {
			return fmt.Errorf("system %d %v: %w", i, slot, err)
		}
	}

	return nil
}

func deconstructOuter(sys *binaries.System) error {
	orb := &sys.Outer
	if orb.Separation2D <= 0 {
		return fmt.Errorf("observed 2D separation %v: %w", orb.Separation2D, binaries.ErrMissingObservation)
	}

	r3D, err := orbit.R3DFrom2D(orb.Separation2D, orb.Phi, orb.Inclination)
	if err != nil {
		return err
	}
	orb.R3D = r3D

	orb.SemimajorAxis, err = orbit.SemimajorAxis(r3D, orb.Eccentricity, orb.Phi, orb.Phi0)
	if err != nil {
		return err
	}

	return fillKinematics(orb)
}

func deconstructHidden(src rand.Source, sys *binaries.System, slot binaries.Slot, o options) error {
	if sys.Outer.SemimajorAxis <= 0 {
		return ErrOuterNotReady
	}
	orb := sys.Slot(slot)

	aIn, err := orbit.InnerSemimajorAxis(src, orb.Parallax, orb.Mass,
		orbit.WithMaxPeriodRetries(o.periodRetries))
	if err != nil {
		return err
	}
	orb.SemimajorAxis = aIn

	orb.R3D, err = orbit.InnerR3D(aIn, orb.Eccentricity, orb.Phi, orb.Phi0)
	if err != nil {
		return err
	}

	if err = fillKinematics(orb); err != nil {
		return err
	}

	orb.Separation2D = orbit.Projected2D(orb.R3D, orb.Phi, orb.Inclination)
	orb.Eta = orbit.PhotometricDistance(orb.Mass1, orb.Mass2, orb.SemimajorAxis, sys.Outer.SemimajorAxis)

	return nil
}

// fillKinematics computes the vis-viva velocity and the projected 2D
// components (vx, vy) = (−v·sin φ, −v·cos φ·cos i) from the slot's
// geometry.
func fillKinematics(orb *binaries.Orbit) error {
	v3D, err := orbit.RelativeVelocity3D(orb.Mass, orb.R3D, orb.SemimajorAxis)
	if err != nil {
		return err
	}

	orb.V3D = v3D
	orb.VX = -v3D * math.Sin(orb.Phi)
	orb.VY = -v3D * math.Cos(orb.Phi) * math.Cos(orb.Inclination)

	return nil
}
