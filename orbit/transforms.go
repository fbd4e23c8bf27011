// SPDX-License-Identifier: MIT

package orbit

import (
	"fmt"
	"math"
)

// RelativeVelocity3D computes the 3D relative velocity of a bound pair via
// the vis-viva relation:
//
//	v = sqrt(G·mass/r3D · (2 − r3D/a))
//
// Preconditions: mass > 0, r3D > 0, a > 0 and r3D/a ≤ 2. A separation
// beyond 2a means the pair is unbound (hyperbolic regime) and returns
// ErrInvalidGeometry — upstream data error, not a recoverable state.
func RelativeVelocity3D(mass, r3D, a float64) (float64, error) {
	if mass <= 0 || r3D <= 0 || a <= 0 {
		return 0, fmt.Errorf("mass=%v r3D=%v a=%v: %w", mass, r3D, a, ErrInvalidGeometry)
	}
	spread := 2 - r3D/a
	if spread < 0 {
		return 0, fmt.Errorf("r3D/a=%v exceeds 2: %w", r3D/a, ErrInvalidGeometry)
	}

	return math.Sqrt(GravConst * mass / r3D * spread), nil
}

// SemimajorAxis derives the semimajor axis from a 3D separation and the
// sampled orbital angles:
//
//	a = r3D·(1 + e·cos(φ−φ₀)) / (1 − e²)
//
// Exact inverse of InnerR3D. Returns ErrInvalidEccentricity for e outside
// [0, 1) and ErrInvalidGeometry for a non-positive separation.
func SemimajorAxis(r3D, e, phi, phi0 float64) (float64, error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	if r3D <= 0 {
		return 0, fmt.Errorf("r3D=%v: %w", r3D, ErrInvalidGeometry)
	}

	return r3D * (1 + e*math.Cos(phi-phi0)) / (1 - e*e), nil
}

// InnerR3D derives the 3D separation from a semimajor axis and the sampled
// orbital angles:
//
//	r3D = a·(1 − e²) / (1 + e·cos(φ−φ₀))
//
// Exact inverse of SemimajorAxis. Returns ErrInvalidEccentricity for e
// outside [0, 1) and ErrInvalidGeometry for a non-positive axis.
func InnerR3D(a, e, phi, phi0 float64) (float64, error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	if a <= 0 {
		return 0, fmt.Errorf("a=%v: %w", a, ErrInvalidGeometry)
	}

	return a * (1 - e*e) / (1 + e*math.Cos(phi-phi0)), nil
}

// Projected2D projects a 3D separation onto the sky plane:
//
//	sep2D = r3D·sqrt(cos²φ + sin²φ·cos²i)
func Projected2D(r3D, phi, incl float64) float64 {
	return r3D * projectionFactor(phi, incl)
}

// R3DFrom2D inverts Projected2D for an observed 2D separation:
//
//	r3D = sep2D / sqrt(cos²φ + cos²i·sin²φ)
//
// Returns ErrDegenerateProjection when the projection factor underflows
// (φ and i both near π/2 — the orbit seen edge-on at quadrature), where
// the inverse blows up instead of inverting.
func R3DFrom2D(sep2D, phi, incl float64) (float64, error) {
	f := projectionFactor(phi, incl)
	if f < minProjectionFactor {
		return 0, fmt.Errorf("phi=%v incl=%v factor=%v: %w", phi, incl, f, ErrDegenerateProjection)
	}

	return sep2D / f, nil
}

// minProjectionFactor bounds the sky-projection factor away from zero for
// the 2D→3D inverse; below it the division amplifies observational noise
// beyond any physical meaning.
const minProjectionFactor = 1e-12

// PhotometricDistance computes the fractional light contribution η used to
// separate a blended hidden companion's photometric signal from its host.
//
// With mc = min(m1, m2), mh = max(m1, m2) and α = MassLuminosityAlpha:
//
//	aIn <  0.3·aOut:  mh·mc·(mh^(α−1) − mc^(α−1)) / ((mh+mc)·(mh^α + mc^α))
//	aIn >= 0.3·aOut:  mc / (mc + mh)
//
// The 0.3 threshold switches between the unresolved blending approximation
// and the plain mass-ratio fallback. Equal masses yield 0.5 in the
// mass-ratio regime and 0 in the blending regime (the (mh^(α−1) − mc^(α−1))
// factor vanishes — equal components displace no blended light). A zero
// companion mass yields 0 in both regimes.
func PhotometricDistance(m1, m2, aIn, aOut float64) float64 {
	mc, mh := math.Min(m1, m2), math.Max(m1, m2)
	if aIn < PhotometricRegimeRatio*aOut {
		const alpha = MassLuminosityAlpha

		return mh * mc * (math.Pow(mh, alpha-1) - math.Pow(mc, alpha-1)) /
			((mh + mc) * (math.Pow(mh, alpha) + math.Pow(mc, alpha)))
	}

	return mc / (mc + mh)
}

func checkEccentricity(e float64) error {
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return fmt.Errorf("e=%v: %w", e, ErrInvalidEccentricity)
	}

	return nil
}

func projectionFactor(phi, incl float64) float64 {
	c, s := math.Cos(phi), math.Sin(phi)
	ci := math.Cos(incl)

	return math.Sqrt(c*c + s*s*ci*ci)
}
