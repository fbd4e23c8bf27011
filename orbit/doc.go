// Package orbit provides the closed-form orbital-geometry transforms of
// the Chae (2023) velocity deconstruction: pure scalar functions mapping
// sampled orbital angles and physical inputs (mass, parallax) to
// separations, semimajor axes and relative velocities.
//
// 🚀 Transform inventory:
//
//   - RelativeVelocity3D — vis-viva: sqrt(G·M/r · (2 − r/a))
//   - SemimajorAxis / InnerR3D — the ellipse equation and its exact
//     inverse between 3D separation and semimajor axis
//   - Projected2D / R3DFrom2D — sky projection of the 3D separation and
//     its inverse for observed 2D separations
//   - PhotometricDistance — fractional light contribution η of a blended
//     hidden companion, with a regime switch at aᵢₙ < 0.3·aₒᵤₜ
//   - InnerSemimajorAxis — log-uniform draw of a hidden companion's
//     semimajor axis with a minimum-period plausibility floor, retried
//     under a bounded budget
//
// All transforms are per-system scalars; callers iterate their catalogs.
// Each guards its physical domain explicitly: a hyperbolic regime
// (2 − r/a < 0) is ErrInvalidGeometry, never a silently flipped sign, and
// an eccentricity at or above 1 is ErrInvalidEccentricity. Nothing here
// touches randomness except InnerSemimajorAxis, which takes an injected
// rand.Source like every sampler in this module.
//
// Units: lengths in parsecs, velocities in km/s, masses in solar masses;
// GravConst is G in that system. The inner
// semimajor-axis draw happens in internal angular units and is converted
// to parsecs via AstronomicalUnit on acceptance.
package orbit
