package pipeline_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrokit/binarystat/binaries"
	"github.com/astrokit/binarystat/orbit"
	"github.com/astrokit/binarystat/pipeline"
)

// testCatalog builds n synthetic wide binaries with plausible observables.
func testCatalog(n int) binaries.Catalog {
	cat := make(binaries.Catalog, n)
	for i := range cat {
		cat[i] = &binaries.System{
			Mag1:       4.8 + 0.1*float64(i%9),
			Mag2:       5.9 - 0.07*float64(i%6),
			Parallax1:  20,
			Parallax2:  25,
			VRA:        0.5,
			VDec:       0.9,
			VRAErr:     0.04,
			VDecErr:    0.03,
			V2D:        1.2,
			Separation: 0.02,
		}
	}

	return cat
}

// TestSampleOrbits_RangesAndOrder verifies the sampled latent variables
// land in their supports and the phase is offset by the reference phase.
func TestSampleOrbits_RangesAndOrder(t *testing.T) {
	cat := testCatalog(30)
	require.NoError(t, pipeline.SampleOrbits(rand.NewPCG(1, 2), cat, binaries.Outer))

	for i, sys := range cat {
		o := sys.Outer
		assert.GreaterOrEqual(t, o.Eccentricity, 0.0, "system %d", i)
		assert.Less(t, o.Eccentricity, 1.0, "system %d", i)
		assert.GreaterOrEqual(t, o.Inclination, 0.0, "system %d", i)
		assert.LessOrEqual(t, o.Inclination, math.Pi/2, "system %d", i)
		assert.GreaterOrEqual(t, o.Phi0, 0.0, "system %d", i)
		assert.LessOrEqual(t, o.Phi0, 2*math.Pi, "system %d", i)
		// φ is the conditional draw shifted by φ₀.
		assert.GreaterOrEqual(t, o.Phi, o.Phi0, "system %d", i)
		assert.Less(t, o.Phi-o.Phi0, 2*math.Pi, "system %d", i)
	}
}

// TestSampleOrbits_SlotsIndependent verifies different slots receive
// different draws (separate records, fresh randomness).
func TestSampleOrbits_SlotsIndependent(t *testing.T) {
	cat := testCatalog(10)
	src := rand.NewPCG(3, 4)
	require.NoError(t, pipeline.SampleOrbits(src, cat, binaries.Outer))
	require.NoError(t, pipeline.SampleOrbits(src, cat, binaries.HiddenA))

	different := 0
	for _, sys := range cat {
		if sys.Outer.Eccentricity != sys.HiddenA.Eccentricity {
			different++
		}
	}
	assert.Positive(t, different, "slots must not alias each other's draws")
}

// TestSampleOrbits_EmptyCatalog verifies the empty-catalog sentinel.
func TestSampleOrbits_EmptyCatalog(t *testing.T) {
	err := pipeline.SampleOrbits(rand.NewPCG(1, 1), nil, binaries.Outer)
	assert.ErrorIs(t, err, binaries.ErrEmptyCatalog)
}

// TestDeconstruct_HiddenRequiresOuter verifies the stage-order guard: η
// needs the outer semimajor axis.
func TestDeconstruct_HiddenRequiresOuter(t *testing.T) {
	cat := testCatalog(5)
	src := rand.NewPCG(6, 6)
	require.NoError(t, binaries.AssignHiddenCompanions(src, cat, 0.5))
	require.NoError(t, pipeline.SampleOrbits(src, cat, binaries.HiddenA))

	err := pipeline.Deconstruct(src, cat, binaries.HiddenA)
	assert.ErrorIs(t, err, pipeline.ErrOuterNotReady)
}

// TestComputeVTilde_RequiresInputs verifies the missing-observation guard
// before masses are assigned.
func TestComputeVTilde_RequiresInputs(t *testing.T) {
	cat := testCatalog(3)
	err := pipeline.ComputeVTilde(cat, binaries.Outer)
	assert.ErrorIs(t, err, binaries.ErrMissingObservation)
}

// TestRun_FullReconstruction runs the complete hidden-tertiary pipeline
// over a synthetic catalog and checks the physical invariants of every
// derived quantity.
func TestRun_FullReconstruction(t *testing.T) {
	cat := testCatalog(40)
	require.NoError(t, pipeline.Run(rand.NewPCG(7, 11), cat, 0.5))

	const tol = 1e-9
	for i, sys := range cat {
		// Outer slot: inverse path from the observed separation.
		out := sys.Outer
		assert.Positive(t, out.SemimajorAxis, "system %d outer axis", i)
		assert.GreaterOrEqual(t, out.R3D, sys.Separation*(1-tol),
			"system %d: deprojection cannot shrink the separation", i)
		assert.LessOrEqual(t, out.R3D, out.SemimajorAxis*(1+out.Eccentricity)*(1+tol),
			"system %d: outer r3D exceeds apoapsis", i)
		assert.Positive(t, out.V3D, "system %d outer velocity", i)

		// Hidden slots: forward-simulated geometry.
		for _, slot := range []binaries.Slot{binaries.HiddenA, binaries.HiddenB} {
			h := sys.Slot(slot)
			assert.Positive(t, h.SemimajorAxis, "system %d %v axis", i, slot)
			assert.LessOrEqual(t, h.R3D, h.SemimajorAxis*(1+h.Eccentricity)*(1+tol),
				"system %d %v r3D exceeds apoapsis", i, slot)
			assert.LessOrEqual(t, h.Separation2D, h.R3D*(1+tol),
				"system %d %v projection exceeds r3D", i, slot)
			assert.GreaterOrEqual(t, h.Eta, 0.0, "system %d %v", i, slot)
			assert.LessOrEqual(t, h.Eta, 0.5, "system %d %v", i, slot)

			// Implied period respects the plausibility floor (within the
			// unit-conversion round trip).
			internal := h.SemimajorAxis / orbit.AstronomicalUnit
			period := math.Sqrt(internal * internal * internal / h.Mass)
			assert.GreaterOrEqual(t, period, orbit.MinPeriodYears*(1-tol), "system %d %v", i, slot)
		}

		// v-tilde statistics for every slot.
		for _, slot := range []binaries.Slot{binaries.Outer, binaries.HiddenA, binaries.HiddenB} {
			o := sys.Slot(slot)
			assert.Positive(t, o.VTilde, "system %d %v v-tilde", i, slot)
			assert.InDelta(t, o.VTilde*math.Sqrt(orbit.GravConst*o.Mass/o.Separation2D), o.Vel2D, tol,
				"system %d %v implied 2D velocity", i, slot)
		}

		// Aggregates.
		assert.InDelta(t, math.Hypot(sys.Vel2DX, sys.Vel2DY), sys.Vel2DChae, tol,
			"system %d combined 2D velocity", i)
		assert.Positive(t, sys.VTildeChae, "system %d Chae v-tilde", i)
		assert.InDelta(t,
			sys.Vel2DChae/math.Sqrt(orbit.GravConst*sys.Outer.Mass/sys.Separation),
			sys.VTildeChae, tol, "system %d Chae v-tilde scale", i)
	}
}

// TestRun_NoCompanionsReduceToOuter verifies η = 0 systems contribute
// nothing beyond the outer pair to the combined velocity.
func TestRun_NoCompanionsReduceToOuter(t *testing.T) {
	cat := testCatalog(15)
	require.NoError(t, pipeline.Run(rand.NewPCG(13, 17), cat, 0))

	const tol = 1e-12
	for i, sys := range cat {
		require.Equal(t, binaries.WithoutCompanion, sys.Tag, "system %d", i)
		assert.Zero(t, sys.HiddenA.Eta, "system %d", i)
		assert.Zero(t, sys.HiddenB.Eta, "system %d", i)
		assert.InDelta(t, sys.Outer.VX, sys.Vel2DX, tol, "system %d", i)
		assert.InDelta(t, sys.Outer.VY, sys.Vel2DY, tol, "system %d", i)
	}
}

// TestRun_Deterministic verifies the full pipeline reproduces under a
// fixed seed.
func TestRun_Deterministic(t *testing.T) {
	a, b := testCatalog(8), testCatalog(8)
	require.NoError(t, pipeline.Run(rand.NewPCG(19, 23), a, 0.6))
	require.NoError(t, pipeline.Run(rand.NewPCG(19, 23), b, 0.6))

	for i := range a {
		assert.Equal(t, a[i].VTildeChae, b[i].VTildeChae, "system %d", i)
		assert.Equal(t, a[i].Outer.Eccentricity, b[i].Outer.Eccentricity, "system %d", i)
	}
}

// TestOptions_PanicOnNonsense verifies option validation.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { pipeline.WithSampleGrid(1) })
	assert.Panics(t, func() { pipeline.WithMaxRejectIter(0) })
	assert.Panics(t, func() { pipeline.WithMaxPeriodRetries(-1) })
}
