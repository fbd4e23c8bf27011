// SPDX-License-Identifier: MIT

package binaries

// Slot names one of the three companion positions of a system. The outer
// slot is the observed wide pair; the hidden slots are unresolved close
// companions to the primary (A) and secondary (B) star.
type Slot uint8

const (
	// Outer is the observed wide pair.
	Outer Slot = iota

	// HiddenA is the unresolved companion to the primary star.
	HiddenA

	// HiddenB is the unresolved companion to the secondary star.
	HiddenB
)

// Hidden reports whether the slot is one of the unresolved companions.
func (s Slot) Hidden() bool {
	return s == HiddenA || s == HiddenB
}

// Suffix returns the column-name suffix for the slot ("", "_A", "_B"),
// used when naming exported table columns.
func (s Slot) Suffix() string {
	switch s {
	case HiddenA:
		return "_A"
	case HiddenB:
		return "_B"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	switch s {
	case HiddenA:
		return "hidden_A"
	case HiddenB:
		return "hidden_B"
	default:
		return "outer"
	}
}
