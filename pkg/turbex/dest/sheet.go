package dest

import (
	"github.com/xuri/excelize/v2"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/landing"
)

// Sheet is one worksheet of an open destination workbook.
type Sheet struct {
	file *excelize.File
	name string
}

// Name returns the sheet's name.
func (s *Sheet) Name() string {
	return s.name
}

// Snapshot captures the sheet's current contents in one bulk read for the
// landing engine. Bulk reading only reports cells that exist, so taking a
// snapshot never grows the sheet's extent, and it sees writes applied to
// the in-memory workbook earlier in the same run.
func (s *Sheet) Snapshot() (*landing.Snapshot, error) {
	raw, err := s.file.GetRows(s.name)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeSaveFailed, err, "failed to read destination sheet "+s.name)
	}
	rows := make([][]cell.Value, len(raw))
	for i, r := range raw {
		cells := make([]cell.Value, len(r))
		for j, v := range r {
			cells[j] = cell.Parse(v)
		}
		rows[i] = cells
	}
	return &landing.Snapshot{Rows: rows}, nil
}

// ApplyPlan writes the shaped grid at the plan's anchor and returns the
// number of grid rows placed. Null cells are skipped entirely so a keep
// grid's gap columns never register cell identity in the destination.
func (s *Sheet) ApplyPlan(shaped [][]cell.Value, plan *landing.WritePlan) (int, error) {
	if plan == nil || len(shaped) == 0 {
		return 0, nil
	}
	for ri, row := range shaped {
		for ci, v := range row {
			if v.IsNull() {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(plan.StartCol+ci, plan.StartRow+ri)
			if err != nil {
				return 0, apperr.Wrap(apperr.CodeSaveFailed, err, "bad destination cell position")
			}
			if err := s.file.SetCellValue(s.name, ref, v.Native()); err != nil {
				return 0, apperr.Wrap(apperr.CodeSaveFailed, err, "failed to write destination cell "+ref)
			}
		}
	}
	return len(shaped), nil
}
