// SPDX-License-Identifier: MIT
// Package pipeline: sentinel error set. Catalog-level conditions reuse the
// binaries sentinels (ErrEmptyCatalog, ErrMissingObservation) so callers
// match one error family across packages.

package pipeline

import "errors"

// ErrOuterNotReady indicates a hidden-slot deconstruction attempted before
// the outer slot's semimajor axis exists. The photometric distance η
// compares inner and outer axes, so the outer pass must run first.
var ErrOuterNotReady = errors.New("pipeline: outer slot must be deconstructed before hidden slots")
