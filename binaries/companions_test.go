package binaries_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrokit/binarystat/binaries"
)

// testCatalog builds n synthetic systems with plausible observables.
func testCatalog(n int) binaries.Catalog {
	cat := make(binaries.Catalog, n)
	for i := range cat {
		cat[i] = &binaries.System{
			Mag1:       5.0 + 0.1*float64(i%7),
			Mag2:       6.0 - 0.05*float64(i%5),
			Parallax1:  20,
			Parallax2:  22,
			VRA:        0.6,
			VDec:       0.8,
			VRAErr:     0.05,
			VDecErr:    0.04,
			V2D:        1.0,
			Separation: 0.02,
		}
	}

	return cat
}

// expectedMass applies the mass–luminosity relation used by the
// assignment.
func expectedMass(mag float64) float64 {
	return math.Pow(10, binaries.MagMassSlope*(binaries.SolarAbsMag-mag))
}

// TestAssign_Validation verifies catalog and fraction preconditions.
func TestAssign_Validation(t *testing.T) {
	src := rand.NewPCG(1, 1)

	err := binaries.AssignHiddenCompanions(src, nil, 0.5)
	assert.ErrorIs(t, err, binaries.ErrEmptyCatalog)

	err = binaries.AssignHiddenCompanions(src, testCatalog(2), 1.5)
	assert.ErrorIs(t, err, binaries.ErrInvalidFraction)

	cat := testCatalog(2)
	cat[1].V2D = 0
	err = binaries.AssignHiddenCompanions(src, cat, 0.5)
	assert.ErrorIs(t, err, binaries.ErrMissingObservation, "zero V2D blocks uncertainty propagation")
}

// TestAssign_NoCompanions verifies frac=0: every system keeps its plain
// per-star masses and zero companion masses.
func TestAssign_NoCompanions(t *testing.T) {
	cat := testCatalog(20)
	require.NoError(t, binaries.AssignHiddenCompanions(rand.NewPCG(2, 3), cat, 0))

	for i, sys := range cat {
		assert.Equal(t, binaries.WithoutCompanion, sys.Tag, "system %d", i)

		assert.InDelta(t, expectedMass(sys.Mag1), sys.HiddenA.Mass1, 1e-12)
		assert.Zero(t, sys.HiddenA.Mass2)
		assert.InDelta(t, expectedMass(sys.Mag2), sys.HiddenB.Mass1, 1e-12)
		assert.Zero(t, sys.HiddenB.Mass2)

		assert.InDelta(t, sys.HiddenA.Mass1+sys.HiddenB.Mass1, sys.Outer.Mass, 1e-12,
			"total mass is the sum of the slot masses")
	}
}

// TestAssign_AllCompanions verifies frac=1: every system hosts at least
// one hidden companion and the mass bookkeeping stays consistent.
func TestAssign_AllCompanions(t *testing.T) {
	cat := testCatalog(50)
	require.NoError(t, binaries.AssignHiddenCompanions(rand.NewPCG(5, 7), cat, 1))

	single, both := 0, 0
	for i, sys := range cat {
		switch sys.Tag {
		case binaries.CompanionSingle:
			single++
			hostsA := sys.HiddenA.Mass2 > 0
			hostsB := sys.HiddenB.Mass2 > 0
			assert.NotEqual(t, hostsA, hostsB, "system %d: exactly one star hosts", i)
		case binaries.CompanionBoth:
			both++
			assert.Positive(t, sys.HiddenA.Mass2, "system %d", i)
			assert.Positive(t, sys.HiddenB.Mass2, "system %d", i)
		default:
			t.Errorf("system %d: unexpected tag %v under frac=1", i, sys.Tag)
		}

		total := sys.HiddenA.Mass1 + sys.HiddenA.Mass2 + sys.HiddenB.Mass1 + sys.HiddenB.Mass2
		assert.InDelta(t, total, sys.Outer.Mass, 1e-12, "system %d total mass", i)
		assert.InDelta(t, sys.HiddenA.Mass1+sys.HiddenA.Mass2, sys.HiddenA.Mass, 1e-12)
		assert.InDelta(t, sys.HiddenB.Mass1+sys.HiddenB.Mass2, sys.HiddenB.Mass, 1e-12)
	}
	assert.Positive(t, single, "expect some single-companion systems over 50 draws")
	assert.Positive(t, both, "expect some both-companion systems over 50 draws")
}

// TestAssign_Bookkeeping verifies the derived columns: slot parallaxes,
// the outer slot's observed separation, and the propagated 2D velocity
// uncertainty.
func TestAssign_Bookkeeping(t *testing.T) {
	cat := testCatalog(3)
	require.NoError(t, binaries.AssignHiddenCompanions(rand.NewPCG(9, 9), cat, 0.5))

	for _, sys := range cat {
		assert.Equal(t, sys.Parallax1, sys.HiddenA.Parallax)
		assert.Equal(t, sys.Parallax2, sys.HiddenB.Parallax)
		assert.Equal(t, sys.Separation, sys.Outer.Separation2D)

		want := (sys.VRA/sys.V2D)*sys.VRAErr + (sys.VDec/sys.V2D)*sys.VDecErr
		assert.InDelta(t, want, sys.DV2D, 1e-15)
	}
}

// TestAssign_Deterministic verifies fixed seeds reproduce the layout.
func TestAssign_Deterministic(t *testing.T) {
	a, b := testCatalog(10), testCatalog(10)
	require.NoError(t, binaries.AssignHiddenCompanions(rand.NewPCG(11, 12), a, 0.7))
	require.NoError(t, binaries.AssignHiddenCompanions(rand.NewPCG(11, 12), b, 0.7))

	for i := range a {
		assert.Equal(t, a[i].Tag, b[i].Tag, "system %d tag", i)
		assert.Equal(t, a[i].Outer.Mass, b[i].Outer.Mass, "system %d mass", i)
	}
}

// TestSlot_Accessors verifies slot addressing and naming.
func TestSlot_Accessors(t *testing.T) {
	sys := &binaries.System{}
	sys.HiddenA.Mass = 2

	assert.Same(t, &sys.Outer, sys.Slot(binaries.Outer))
	assert.Same(t, &sys.HiddenA, sys.Slot(binaries.HiddenA))
	assert.Same(t, &sys.HiddenB, sys.Slot(binaries.HiddenB))
	assert.Equal(t, 2.0, sys.Slot(binaries.HiddenA).Mass)

	assert.Equal(t, "", binaries.Outer.Suffix())
	assert.Equal(t, "_A", binaries.HiddenA.Suffix())
	assert.Equal(t, "_B", binaries.HiddenB.Suffix())
	assert.False(t, binaries.Outer.Hidden())
	assert.True(t, binaries.HiddenB.Hidden())
}
