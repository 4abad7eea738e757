package table

import "github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"

// IndexedRow pairs a row with its absolute 0-based position in the source
// table. The index survives filtering so later stages can still address the
// source by position.
type IndexedRow struct {
	Index int
	Cells []cell.Value
}

// SelectRows returns the rows at the given 0-based indices, in index order.
// An empty index set selects all rows. Out-of-range indices are dropped.
func SelectRows(rows [][]cell.Value, indices []int) [][]cell.Value {
	picked := SelectRowsIndexed(rows, indices)
	out := make([][]cell.Value, len(picked))
	for i, ir := range picked {
		out[i] = ir.Cells
	}
	return out
}

// SelectRowsIndexed is SelectRows keeping each picked row's absolute index.
func SelectRowsIndexed(rows [][]cell.Value, indices []int) []IndexedRow {
	if len(indices) == 0 {
		out := make([]IndexedRow, len(rows))
		for i, r := range rows {
			out[i] = IndexedRow{Index: i, Cells: r}
		}
		return out
	}
	out := make([]IndexedRow, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(rows) {
			continue
		}
		out = append(out, IndexedRow{Index: idx, Cells: rows[idx]})
	}
	return out
}

// SelectColumns returns, for every row, the cells at the given 0-based
// column indices, in index order. An empty index set selects all columns.
// Indices beyond a row's width yield the null marker, so every output row
// has exactly len(indices) cells.
func SelectColumns(rows [][]cell.Value, indices []int) [][]cell.Value {
	if len(indices) == 0 {
		return rows
	}
	out := make([][]cell.Value, len(rows))
	for i, r := range rows {
		picked := make([]cell.Value, len(indices))
		for j, idx := range indices {
			if idx >= 0 && idx < len(r) {
				picked[j] = r[idx]
			}
		}
		out[i] = picked
	}
	return out
}

// Cells strips the indices off a filtered row set.
func Cells(rows []IndexedRow) [][]cell.Value {
	out := make([][]cell.Value, len(rows))
	for i, ir := range rows {
		out[i] = ir.Cells
	}
	return out
}

// Positions returns the absolute source indices of a filtered row set.
func Positions(rows []IndexedRow) []int {
	out := make([]int, len(rows))
	for i, ir := range rows {
		out[i] = ir.Index
	}
	return out
}
