// Package source loads XLSX and CSV source files into typed tables and
// memoizes them for the duration of a batch run.
package source

import (
	"path/filepath"
	"strings"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
)

// Load reads the source at path into a normalized table. Files ending in
// .csv (case-insensitive) are parsed as CSV and sheetName is ignored;
// everything else is opened as a spreadsheet workbook.
func Load(path, sheetName string) ([][]cell.Value, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(path)
	}
	return LoadXLSX(path, sheetName)
}
