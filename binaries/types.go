// SPDX-License-Identifier: MIT

package binaries

// CompanionTag records the outcome of the hidden-companion assignment for
// one system.
type CompanionTag uint8

const (
	// WithoutCompanion marks a plain wide binary: both hidden slots carry
	// zero companion mass and contribute nothing downstream.
	WithoutCompanion CompanionTag = iota

	// CompanionSingle marks a system where exactly one star hosts a
	// hidden companion.
	CompanionSingle

	// CompanionBoth marks a system where both stars host one.
	CompanionBoth
)

// Orbit is the per-slot orbital state of a system: the sampled latent
// variables, the slot's physical inputs, and everything the pipelines
// derive from them. Fields are zero until the corresponding pipeline
// stage fills them.
//
// Invariants maintained by the pipelines: Phi is always drawn conditional
// on (Eccentricity, Phi0); SemimajorAxis is strictly positive once set;
// R3D never exceeds SemimajorAxis·(1+Eccentricity).
type Orbit struct {
	// Sampled latent variables.
	Eccentricity float64 // e ∈ [0, 1)
	Inclination  float64 // i ∈ [0, π/2]
	Phi0         float64 // reference phase φ₀ ∈ [0, 2π)
	Phi          float64 // phase φ, drawn conditional on (e, φ₀)

	// Physical inputs for this slot.
	Mass     float64 // total system mass (outer) or inner-pair mass (hidden)
	Parallax float64 // host star parallax (hidden slots)
	Mass1    float64 // mass of the slot's primary component
	Mass2    float64 // hidden companion mass; 0 when no companion

	// Derived geometry and kinematics.
	SemimajorAxis float64
	R3D           float64 // 3D separation
	V3D           float64 // 3D relative velocity
	VX, VY        float64 // projected 2D velocity components

	Separation2D float64 // 2D separation: observed (outer), derived (hidden)
	Eta          float64 // photometric distance η (hidden slots)

	// v-tilde statistic and the velocity it implies.
	VTilde float64
	Vel2D  float64
}

// System is one observed wide binary with its three companion slots and
// the aggregate quantities combining them.
type System struct {
	// Observables.
	Mag1, Mag2           float64 // apparent magnitudes of the pair
	Parallax1, Parallax2 float64
	VRA, VDec            float64 // observed velocity components
	VRAErr, VDecErr      float64
	V2D                  float64 // observed 2D relative velocity
	Separation           float64 // observed 2D projected separation

	// Assignment outcome and propagated uncertainty.
	Tag  CompanionTag
	DV2D float64

	// Companion slots.
	Outer   Orbit
	HiddenA Orbit
	HiddenB Orbit

	// Aggregates over all three slots.
	Vel2DX, Vel2DY float64
	Vel2DChae      float64
	VTildeChae     float64
}

// Slot returns the orbital record for the given slot.
func (s *System) Slot(slot Slot) *Orbit {
	switch slot {
	case HiddenA:
		return &s.HiddenA
	case HiddenB:
		return &s.HiddenB
	default:
		return &s.Outer
	}
}

// Catalog is an in-memory table of systems, one row each.
type Catalog []*System
