package table

import "github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"

// ShapePack is the identity shaper. Pack output is dense by construction:
// row and column selection already removed everything unselected, so there
// is nothing left to reshape.
func ShapePack(rows [][]cell.Value) [][]cell.Value {
	return rows
}

// ShapeKeep builds the keep-format grid from the full normalized table.
//
// The output has one row per surviving row index, in the given order, so
// filtered-out rows do not leave blank lines. Horizontally the grid spans
// the bounding box of the selected columns, with unselected columns inside
// the box left as the null marker, preserving the selection's relative
// column positions.
//
// Empty rowIndices selects all rows and empty colIndices all columns; a
// caller whose filter removed every row must not call this with an empty
// index set, it should skip shaping instead.
func ShapeKeep(table [][]cell.Value, rowIndices, colIndices []int) [][]cell.Value {
	if len(table) == 0 {
		return nil
	}
	if len(rowIndices) == 0 {
		rowIndices = make([]int, len(table))
		for i := range table {
			rowIndices[i] = i
		}
	}
	if len(colIndices) == 0 {
		colIndices = make([]int, len(table[0]))
		for i := range table[0] {
			colIndices[i] = i
		}
	}
	if len(colIndices) == 0 {
		return nil
	}

	minCol, maxCol := colIndices[0], colIndices[0]
	selected := make(map[int]bool, len(colIndices))
	for _, c := range colIndices {
		selected[c] = true
		if c < minCol {
			minCol = c
		}
		if c > maxCol {
			maxCol = c
		}
	}

	out := make([][]cell.Value, 0, len(rowIndices))
	for _, r := range rowIndices {
		if r < 0 || r >= len(table) {
			continue
		}
		row := make([]cell.Value, maxCol-minCol+1)
		for c := minCol; c <= maxCol; c++ {
			if selected[c] && c < len(table[r]) {
				row[c-minCol] = table[r][c]
			}
		}
		out = append(out, row)
	}
	return out
}
