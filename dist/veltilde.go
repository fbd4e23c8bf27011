// SPDX-License-Identifier: MIT

package dist

import "math"

// VelTilde evaluates the dimensionless relative-velocity statistic ṽ of
// Hernandez (2023): the ratio of the pair's relative velocity to the
// circular-orbit scale sqrt(G·M/r), as a closed form over the sampled
// orbital angles.
//
// phi is the phase measured from the reference epoch (callers pass φ−φ₀),
// phi0 the reference phase, incl the inclination and e the eccentricity.
//
// The form combines two geometric correction factors:
//
//	(1 − sin²i · cos²(phi − phi0))^¼
//	sqrt((1 + e² + 2e·cos(phi) − sin²i·(e·sin(phi0) − sin(phi − phi0))²)
//	     / (1 + e·cos(phi)))
//
// This is a derived physical quantity, not a sampled law: it is evaluated
// pointwise and never inverted.
func VelTilde(phi, phi0, incl, e float64) float64 {
	sini := math.Sin(incl)
	sini2 := sini * sini

	cosRel := math.Cos(phi - phi0)
	proj := math.Pow(1-sini2*cosRel*cosRel, 0.25)

	dev := e*math.Sin(phi0) - math.Sin(phi-phi0)
	ratio := (1 + e*e + 2*e*math.Cos(phi) - sini2*dev*dev) / (1 + e*math.Cos(phi))

	return proj * math.Sqrt(ratio)
}
