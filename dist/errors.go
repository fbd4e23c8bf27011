// SPDX-License-Identifier: MIT
// Package dist: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dist
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions;
// panics are reserved for nonsensical option values (programmer error).

package dist

import "errors"

var (
	// ErrNilLaw is returned when a Distribution is constructed around a nil
	// density function.
	ErrNilLaw = errors.New("dist: nil density law")

	// ErrInvalidDomain indicates malformed sampling bounds or grid sizes,
	// e.g. xMin >= xMax, fewer than two grid points, or a non-positive
	// draw count.
	ErrInvalidDomain = errors.New("dist: invalid sampling domain")

	// ErrZeroDensity indicates the density is identically zero over the
	// requested grid, so no CDF exists. The remedy is caller-side: widen
	// or shift the grid onto the law's support.
	ErrZeroDensity = errors.New("dist: density is zero over the entire grid")

	// ErrNonMonotonicCDF indicates duplicate CDF values blocking inversion.
	// This means the grid is too coarse or the density has a flat-zero
	// region inside the sampling window; refine the grid rather than
	// deduplicate silently.
	ErrNonMonotonicCDF = errors.New("dist: CDF is not strictly increasing")

	// ErrDrawCountMismatch is returned by PhiAngle.Sample when the number
	// of requested draws differs from the length of the per-draw
	// eccentricity sequence.
	ErrDrawCountMismatch = errors.New("dist: draw count does not match eccentricity count")

	// ErrInvalidEccentricity indicates an eccentricity outside [0, 1).
	ErrInvalidEccentricity = errors.New("dist: eccentricity outside [0,1)")

	// ErrRejectionTimeout is returned when an accept/reject loop exhausts
	// its iteration budget without accepting a draw.
	ErrRejectionTimeout = errors.New("dist: rejection sampling exceeded iteration budget")
)
