// Package landing decides where a shaped grid lands in a destination sheet
// and whether that landing zone is clear.
//
// Everything here is pure computation over a Snapshot the caller captured
// with one bulk read. The engine never probes destination cells one by one:
// random-access reads can register empty cells in the workbook model and
// inflate the sheet's reported extent, which would corrupt every later
// append decision.
package landing

import "github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"

// Snapshot is a read-only capture of a destination sheet. Rows holds every
// row the sheet reports, 0-based and possibly ragged; anything outside it is
// empty by definition.
type Snapshot struct {
	Rows [][]cell.Value
}

// MaxRow returns the highest 1-based row the capture extends to.
func (s *Snapshot) MaxRow() int {
	return len(s.Rows)
}

// Cell returns the value at 1-based (row, col). Positions outside the
// captured extent are the null marker.
func (s *Snapshot) Cell(row, col int) cell.Value {
	r, c := row-1, col-1
	if r < 0 || r >= len(s.Rows) {
		return cell.Null()
	}
	if c < 0 || c >= len(s.Rows[r]) {
		return cell.Null()
	}
	return s.Rows[r][c]
}
