package cell

import "strings"

// IsOccupiedSource reports whether a source cell carries content worth
// extracting. Null and the empty string are empty; every other value,
// including zero, FALSE, whitespace and formula text, is occupied.
func IsOccupiedSource(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindText:
		return v.text != ""
	default:
		return true
	}
}

// IsOccupiedDest reports whether a destination cell shows content that a
// write would collide with. Same as IsOccupiedSource except text beginning
// with "=" is treated as empty: a formula read back without evaluation shows
// no content of its own.
//
// Kept as a separate function rather than a flag on IsOccupiedSource so each
// call site names the side of the pipeline it is judging.
func IsOccupiedDest(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindText:
		return v.text != "" && !strings.HasPrefix(v.text, "=")
	default:
		return true
	}
}
