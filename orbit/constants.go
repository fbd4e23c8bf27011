// SPDX-License-Identifier: MIT

package orbit

// Physical constants and regime thresholds, single source of truth.
const (
	// GravConst is the gravitational constant G in pc·(km/s)²/M☉.
	GravConst = 4.30091e-3

	// AstronomicalUnit converts an accepted inner semimajor-axis draw from
	// internal angular units to parsecs.
	AstronomicalUnit = 4.84e-6

	// MinInnerAxis is the lower bound of the log-uniform inner
	// semimajor-axis prior.
	MinInnerAxis = 0.01

	// MinPeriodYears is the minimum-period plausibility floor: inner-axis
	// draws whose implied period P = sqrt(a³/M) falls below it are
	// rejected and redrawn.
	MinPeriodYears = 3.0

	// PhotometricRegimeRatio separates the resolved/unresolved blending
	// approximation from the simple mass-ratio fallback: the full formula
	// applies while aIn < PhotometricRegimeRatio · aOut.
	PhotometricRegimeRatio = 0.3

	// MassLuminosityAlpha is the exponent of the mass–luminosity relation
	// used by the blending approximation.
	MassLuminosityAlpha = 3.5
)
