package landing

import "github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"

// TargetColOffsets returns the 0-based column offsets within the shaped grid
// that carry destination-visible content in at least one row. Gap columns
// from keep shaping are excluded, which is what lets two keep extractions
// with interleaved columns share rows without colliding.
func TargetColOffsets(shaped [][]cell.Value) []int {
	width := 0
	for _, row := range shaped {
		if len(row) > width {
			width = len(row)
		}
	}
	var offsets []int
	for c := 0; c < width; c++ {
		for _, row := range shaped {
			if c < len(row) && cell.IsOccupiedDest(row[c]) {
				offsets = append(offsets, c)
				break
			}
		}
	}
	return offsets
}

// Blocker is the first occupied destination cell found by a probe, in
// 1-based coordinates.
type Blocker struct {
	Row   int
	Col   int
	Value cell.Value
}

// ScanTargetCols returns the highest 1-based row with an occupied cell in
// any of the given absolute 1-based columns, or 0 when those columns are
// entirely empty. Only the target columns are read, so data in other
// columns never pushes an append downward.
func ScanTargetCols(snap *Snapshot, targetCols []int) int {
	maxRow := 0
	for i, row := range snap.Rows {
		for _, col := range targetCols {
			if col-1 < 0 || col-1 >= len(row) {
				continue
			}
			if cell.IsOccupiedDest(row[col-1]) {
				if i+1 > maxRow {
					maxRow = i + 1
				}
				break
			}
		}
	}
	return maxRow
}

// ProbeTargetCols scans rows rowStart through rowEnd (1-based, inclusive)
// across the given absolute columns in row-major order and returns the first
// occupied cell. The second result is false when the probed area is clear.
func ProbeTargetCols(snap *Snapshot, rowStart, rowEnd int, targetCols []int) (Blocker, bool) {
	for row := rowStart; row <= rowEnd; row++ {
		for _, col := range targetCols {
			v := snap.Cell(row, col)
			if cell.IsOccupiedDest(v) {
				return Blocker{Row: row, Col: col, Value: v}, true
			}
		}
	}
	return Blocker{}, false
}
