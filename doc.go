// Package binarystat is an in-memory toolkit for statistical modeling of
// binary and multiple stellar systems — from generic inverse-CDF sampling
// of orbital priors to full velocity deconstruction per companion.
//
// 🚀 What is binarystat?
//
//	A small, deterministic library that brings together:
//		• dist:     a generic continuous-distribution engine (grid
//		            normalization, CDF inversion, rejection sampling)
//		            plus the orbital priors (Thermal, Sine, Uniform,
//		            PowerLaw, Logarithmic, PhiAngle) and the v-tilde
//		            closed form
//		• orbit:    pure orbital-geometry transforms (semimajor axis,
//		            3D/2D separations, relative velocity, photometric
//		            distance) with explicit domain-validity errors
//		• binaries: structured per-system records with three companion
//		            slots (outer, hidden A, hidden B) and hidden-companion
//		            mass assignment
//		• pipeline: the Hernandez orbital-distribution sampler, the Chae
//		            velocity deconstruction, and the hidden-tertiary
//		            aggregation into a single projected 2D velocity
//
// ✨ Why choose binarystat?
//
//   - Deterministic – every sampler takes an injected rand.Source; fixed
//     seeds reproduce entire catalogs bit-for-bit
//   - Honest numerics – typed sentinel errors for degenerate grids,
//     non-invertible CDFs and unphysical geometry instead of silent NaNs
//   - Bounded loops – every accept/reject sampler carries an iteration
//     budget and a typed timeout error
//   - Pure Go – records in, records out; no I/O, no plotting, no globals
//
// Control flow over a catalog of systems:
//
//	pipeline.SampleOrbits   →  (e, i, φ₀, φ) per system per slot
//	pipeline.Deconstruct    →  a, r₃D, v₃D, (vx, vy), η, 2D separation
//	pipeline.Combine        →  aggregate 2D relative velocity + v-tilde
//
// Dive into each package's doc.go for formulas, invariants and examples.
package binarystat
