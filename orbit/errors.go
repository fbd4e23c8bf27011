// SPDX-License-Identifier: MIT
// Package orbit: sentinel error set. Matched via errors.Is; wrap with
// fmt.Errorf("ctx: %w", ErrX) at outer boundaries only.

package orbit

import "errors"

var (
	// ErrInvalidGeometry indicates physically inconsistent derived
	// geometry: a non-positive separation or semimajor axis, or a
	// hyperbolic regime (2 − r/a < 0) reaching the vis-viva radicand.
	ErrInvalidGeometry = errors.New("orbit: physically inconsistent geometry")

	// ErrInvalidEccentricity indicates an eccentricity outside [0, 1);
	// the ellipse equation degenerates at e = 1.
	ErrInvalidEccentricity = errors.New("orbit: eccentricity outside [0,1)")

	// ErrDegenerateProjection indicates a vanishing sky-projection factor
	// (φ and i both at π/2), where the 2D→3D inverse is undefined.
	ErrDegenerateProjection = errors.New("orbit: degenerate sky projection")

	// ErrInvalidDomain indicates malformed physical inputs to the inner
	// semimajor-axis sampler (parallax at or below the prior's lower
	// bound, or a non-positive mass).
	ErrInvalidDomain = errors.New("orbit: invalid physical domain")

	// ErrRejectionTimeout is returned when the period-floor retry loop
	// exhausts its iteration budget.
	ErrRejectionTimeout = errors.New("orbit: period-floor retry exceeded iteration budget")
)
