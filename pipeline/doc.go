// Package pipeline orchestrates the statistical reconstruction of binary
// relative velocities over a catalog: orbital-prior sampling per
// companion slot, the Chae (2023) velocity deconstruction, the Hernandez
// (2023) v-tilde statistic, and the hidden-tertiary aggregation that
// combines all three slots into a single projected 2D relative velocity.
//
// 🚀 Stages (see Run for the full orchestration):
//
//	SampleOrbits    — per system: e ~ Thermal on [0,1], i ~ Sine on
//	                  [0,π/2], φ₀ ~ Uniform on [0,2π], then φ drawn from
//	                  the phase density conditional on (e, φ₀) and offset
//	                  by φ₀. The order is load-bearing: φ depends on both
//	                  e and φ₀ already being materialized.
//	Deconstruct     — outer slot: invert the observed 2D separation into
//	                  r₃D, derive the semimajor axis forward, then the
//	                  vis-viva velocity and its 2D components
//	                  (vx, vy) = (−v·sin φ, −v·cos φ·cos i).
//	                  Hidden slots run the opposite direction: forward-
//	                  simulate the inner semimajor axis from parallax and
//	                  mass priors, derive r₃D, velocity, the projected 2D
//	                  separation and the photometric distance η. The
//	                  outer slot must be deconstructed first — η compares
//	                  inner and outer axes.
//	ComputeVTilde   — the Hernandez closed form per slot, plus the 2D
//	                  velocity it implies, ṽ·sqrt(G·M/sep).
//	Combine         — VEL2D = |(vx, vy) + η_A·(vx, vy)_A + η_B·(vx, vy)_B|
//	                  and the Chae v-tilde against the outer circular
//	                  scale.
//
// Failures abort the batch on the first bad row; every error is wrapped
// with the system index (and slot) so callers can implement row-skipping
// on top if they prefer per-row diagnostics.
package pipeline
