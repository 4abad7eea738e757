package source

import (
	"errors"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/table"
)

// LoadXLSX reads one sheet of a workbook into a normalized table of typed
// values. The whole sheet is pulled with a single bulk row read; blank
// trailing cells come back as the null marker after normalization.
//
// A blank sheetName reads the workbook's first sheet.
func LoadXLSX(path, sheetName string) ([][]cell.Value, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, classifyReadError(path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	raw, err := f.GetRows(sheetName)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, apperr.Newf(apperr.CodeSheetNotFound, "sheet %q not found in %s", sheetName, path)
		}
		return nil, apperr.Wrap(apperr.CodeSourceReadFailed, err, "failed to read sheet "+sheetName)
	}

	rows := make([][]cell.Value, len(raw))
	for i, r := range raw {
		cells := make([]cell.Value, len(r))
		for j, s := range r {
			cells[j] = cell.Parse(s)
		}
		rows[i] = cells
	}
	return table.Normalize(rows), nil
}

// classifyReadError maps an open failure to the error taxonomy: lock and
// permission problems are FileLocked, everything else, including a missing
// file or an unreadable format, is SourceReadFailed.
func classifyReadError(path string, err error) *apperr.Error {
	if apperr.IsLockError(err) {
		e := apperr.Wrap(apperr.CodeFileLocked, err, "source file is locked: "+path)
		e.Details = map[string]any{"path": path}
		return e
	}
	if errors.Is(err, os.ErrNotExist) {
		return apperr.Wrap(apperr.CodeSourceReadFailed, err, "source file not found: "+path)
	}
	return apperr.Wrap(apperr.CodeSourceReadFailed, err, "failed to open source file: "+err.Error())
}
