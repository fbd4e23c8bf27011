// SPDX-License-Identifier: MIT
// Package binaries: sentinel error set. Matched via errors.Is.

package binaries

import "errors"

var (
	// ErrEmptyCatalog indicates an operation over a catalog with no systems.
	ErrEmptyCatalog = errors.New("binaries: empty catalog")

	// ErrInvalidFraction indicates a hidden-companion fraction outside [0, 1].
	ErrInvalidFraction = errors.New("binaries: companion fraction outside [0,1]")

	// ErrMissingObservation indicates a system lacking a required observed
	// quantity (e.g. a non-positive 2D velocity blocking uncertainty
	// propagation).
	ErrMissingObservation = errors.New("binaries: missing or invalid observation")
)
