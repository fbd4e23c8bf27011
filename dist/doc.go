// Package dist provides a generic one-dimensional continuous-distribution
// engine together with the concrete probability laws used as orbital
// priors for binary-star statistics.
//
// 🚀 What is dist?
//
//	A Distribution wraps an unnormalized density law f: ℝ → ℝ≥0 and
//	derives everything else numerically on a caller-supplied grid:
//	  • PDF     — normalized density values over the grid
//	  • CDF     — running sum scaled so the final value is exactly 1
//	  • Sample  — inverse-transform sampling: build the CDF, fit a
//	    monotone piecewise-linear inverse, map uniform draws through it
//
// Normalization is a discretized sum over the current grid (step
// (max−min)/n), not an analytic integral, so the normalization constant
// is cached per (min, max, n) key and recomputed whenever the grid
// changes. The cache is guarded by a mutex and safe for concurrent
// first-use.
//
// Uniform draws feeding the inverse CDF are taken on the open window
// (0.001, 0.999) — the boundaries of a discretized CDF are where the
// inverse is ill-defined.
//
// ✨ Concrete laws:
//
//   - NewUniform(a, b)      — constant 1/(b−a) on [a, b], 0 outside
//   - NewUnboundedUniform() — the constant function 1
//   - NewThermal()          — 2x on [0, 1), the thermal eccentricity prior
//   - NewPowerLaw(c, α)     — c·x^α
//   - NewLogarithmic()      — 1/x, the log-uniform semimajor-axis prior
//   - NewSine()             — sin(i) on [0, π/2], the inclination prior
//
// Two members do not fit the inverse-CDF mold:
//
//   - VelTilde is a closed-form four-argument physical quantity; it is
//     evaluated pointwise and never inverted.
//   - PhiAngle draws orbital phase angles conditional on a per-draw
//     eccentricity sequence via envelope rejection sampling, with a
//     bounded iteration budget (ErrRejectionTimeout).
//
// ⚙️ Usage:
//
//	thermal := dist.NewThermal()
//	src := rand.NewPCG(1, 2)
//	ecc, err := thermal.Sample(src, 0, 1, 1000)
//	if err != nil {
//	  // ErrInvalidDomain, ErrZeroDensity, ErrNonMonotonicCDF
//	}
//
// Errors are package-level sentinels matched via errors.Is; see errors.go.
package dist
