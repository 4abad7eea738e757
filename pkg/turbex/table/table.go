// Package table implements the in-memory transforms between a raw source
// read and a shaped, placeable grid: normalization, used-range measurement,
// row and column selection, and the pack and keep shapers.
//
// Tables are [][]cell.Value with 0-based indices. Functions here never
// modify their inputs; callers can share a loaded table across extractions.
package table

import "github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"

// Normalize right-pads every row with the null marker so all rows have the
// width of the widest row. Returns a new table; the input is untouched.
func Normalize(rows [][]cell.Value) [][]cell.Value {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	out := make([][]cell.Value, len(rows))
	for i, r := range rows {
		padded := make([]cell.Value, width)
		copy(padded, r)
		out[i] = padded
	}
	return out
}

// UsedRange returns the tight bounding height and width of the occupied
// cells: the number of rows up to the last occupied row and columns up to
// the last occupied column. An empty or all-blank table is (0, 0).
func UsedRange(rows [][]cell.Value) (height, width int) {
	for i, r := range rows {
		for j, v := range r {
			if cell.IsOccupiedSource(v) {
				if i+1 > height {
					height = i + 1
				}
				if j+1 > width {
					width = j + 1
				}
			}
		}
	}
	return height, width
}
