// Package dest manages destination workbooks: opening or creating them,
// snapshotting sheets for placement decisions, committing write plans and
// caching open workbooks across a batch run.
package dest

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
)

// defaultSheetName is the sheet a brand-new workbook starts with.
const defaultSheetName = "Sheet1"

// Workbook wraps one open destination spreadsheet and remembers the path it
// saves to.
type Workbook struct {
	file *excelize.File
	path string
}

// OpenOrCreate opens the workbook at path, or starts a new in-memory
// workbook when no file exists there yet. The file on disk is not touched
// until Save.
func OpenOrCreate(path string) (*Workbook, error) {
	if path == "" {
		return nil, apperr.New(apperr.CodeMissingDestPath, "destination file path is blank")
	}
	if _, err := os.Stat(path); err != nil {
		return &Workbook{file: excelize.NewFile(), path: path}, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		if apperr.IsLockError(err) {
			e := apperr.Wrap(apperr.CodeFileLocked, err, "destination file is locked: "+path)
			e.Details = map[string]any{"path": path}
			return nil, e
		}
		return nil, apperr.Wrap(apperr.CodeSaveFailed, err, "failed to open destination workbook: "+err.Error())
	}
	return &Workbook{file: f, path: path}, nil
}

// Path returns the path the workbook saves to.
func (w *Workbook) Path() string {
	return w.path
}

// Sheet returns a handle to the named sheet, creating the sheet if absent.
// A blank name means the default sheet. When creating a sheet leaves the
// workbook's untouched default sheet behind, that default is dropped, but
// only while it is still blank.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if name == "" {
		name = defaultSheetName
	}
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, apperr.Newf(apperr.CodeBadSpec, "bad destination sheet name %q", name)
	}
	if idx == -1 {
		if _, err := w.file.NewSheet(name); err != nil {
			return nil, apperr.Newf(apperr.CodeBadSpec, "cannot create destination sheet %q", name)
		}
		w.dropBlankDefault(name)
	}
	return &Sheet{file: w.file, name: name}, nil
}

// dropBlankDefault removes the stock default sheet after a named sheet was
// created, so new workbooks do not ship an empty extra tab. The default is
// kept if it is the requested sheet, has any content, or is the only other
// way the workbook would end up sheetless.
func (w *Workbook) dropBlankDefault(justCreated string) {
	if justCreated == defaultSheetName {
		return
	}
	idx, err := w.file.GetSheetIndex(defaultSheetName)
	if err != nil || idx == -1 {
		return
	}
	if len(w.file.GetSheetList()) < 2 {
		return
	}
	rows, err := w.file.GetRows(defaultSheetName)
	if err != nil || len(rows) > 0 {
		return
	}
	_ = w.file.DeleteSheet(defaultSheetName)
}

// Save writes the workbook to its path. Lock and permission failures map to
// FileLocked, everything else to SaveFailed.
func (w *Workbook) Save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		if apperr.IsLockError(err) {
			e := apperr.Wrap(apperr.CodeFileLocked, err, "destination file is locked: "+w.path)
			e.Details = map[string]any{"path": w.path}
			return e
		}
		e := apperr.Wrap(apperr.CodeSaveFailed, err, "failed to save destination: "+err.Error())
		e.Details = map[string]any{"path": w.path}
		return e
	}
	return nil
}

// Close releases the underlying file. Pending changes not yet saved are
// discarded.
func (w *Workbook) Close() error {
	return w.file.Close()
}
