// Package turbex wires source loading, selection, filtering, shaping and
// landing into the single-sheet extraction pipeline and the batch runner.
package turbex

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/dest"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/landing"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/refs"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/rules"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/source"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/table"
)

// RunSheet executes one extraction standalone: the destination workbook is
// opened, written and saved within this call. Batch runs go through RunAll
// instead, which shares workbooks across items and saves per item.
func RunSheet(sourcePath string, cfg models.SheetConfig, recipeName string) (models.SheetResult, error) {
	workbooks := dest.NewCache()
	defer workbooks.Close()

	result, err := runSheet(sourcePath, cfg, recipeName, nil, workbooks)
	if err != nil {
		return result, err
	}
	if wb, ok := workbooks.Peek(cfg.Destination.FilePath); ok {
		if err := wb.Save(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// runSheet runs the pipeline against an already established workbook cache
// and leaves saving to the caller.
func runSheet(sourcePath string, cfg models.SheetConfig, recipeName string, sources *source.Cache, workbooks *dest.Cache) (models.SheetResult, error) {
	result := models.SheetResult{
		SourcePath: sourcePath,
		RecipeName: recipeName,
		SheetName:  cfg.Name,
		DestFile:   cfg.Destination.FilePath,
		DestSheet:  cfg.Destination.SheetName,
	}

	if strings.TrimSpace(sourcePath) == "" {
		return result, apperr.New(apperr.CodeMissingSourcePath, "source file path is blank")
	}

	raw, err := sources.Load(sourcePath, cfg.SourceSheetName)
	if err != nil {
		return result, err
	}
	rows, err := applySourceStartRow(raw, cfg.SourceStartRow)
	if err != nil {
		return result, err
	}

	usedHeight, usedWidth := table.UsedRange(rows)
	tbl := table.Normalize(rows)

	rowIndices, err := refs.ParseRowSpec(cfg.RowsSpec)
	if err != nil {
		return result, err
	}
	if len(rowIndices) == 0 {
		rowIndices = sequence(usedHeight)
	}
	selected := table.SelectRowsIndexed(tbl, rowIndices)

	survivors, err := rules.ApplyIndexed(selected, cfg.Rules, cfg.RulesCombine)
	if err != nil {
		return result, err
	}

	colIndices, err := refs.ParseColumnSpec(cfg.ColumnsSpec)
	if err != nil {
		return result, err
	}
	if len(colIndices) == 0 {
		colIndices = sequence(usedWidth)
	}

	var shaped [][]cell.Value
	if cfg.PasteMode == models.PasteModeKeep {
		// An empty survivor set means an empty grid; ShapeKeep would read
		// an empty index set as "all rows".
		if len(survivors) > 0 {
			shaped = table.ShapeKeep(tbl, table.Positions(survivors), colIndices)
		}
	} else {
		shaped = table.ShapePack(table.SelectColumns(table.Cells(survivors), colIndices))
	}

	wb, err := workbooks.Get(cfg.Destination.FilePath)
	if err != nil {
		return result, err
	}
	sheet, err := wb.Sheet(cfg.Destination.SheetName)
	if err != nil {
		return result, err
	}
	result.DestSheet = sheet.Name()

	snap, err := sheet.Snapshot()
	if err != nil {
		return result, err
	}

	startCol := strings.TrimSpace(cfg.Destination.StartCol)
	if startCol == "" {
		startCol = "A"
	}
	plan, err := landing.BuildPlan(snap, shaped, startCol, cfg.Destination.StartRow)
	if err != nil {
		return result, err
	}

	rowsWritten := 0
	if plan != nil {
		rowsWritten, err = sheet.ApplyPlan(shaped, plan)
		if err != nil {
			return result, err
		}
		log.Debug().
			Str("dest", cfg.Destination.FilePath).
			Str("sheet", sheet.Name()).
			Int("startRow", plan.StartRow).
			Int("startCol", plan.StartCol).
			Int("rows", rowsWritten).
			Msg("Placed shaped grid")
	}

	result.RowsWritten = rowsWritten
	if rowsWritten > 0 {
		result.Message = "OK"
	} else {
		result.Message = "0 rows written"
	}
	return result, nil
}

// applySourceStartRow drops the rows above the configured 1-based start row.
// A blank spec keeps the table whole; a start row past the end of the table
// yields an empty table.
func applySourceStartRow(rows [][]cell.Value, spec string) ([][]cell.Value, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return rows, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, apperr.Newf(apperr.CodeBadSourceStartRow, "source start row must be a number, got %q", spec)
	}
	if n < 1 {
		return nil, apperr.Newf(apperr.CodeBadSourceStartRow, "source start row must be 1 or higher, got %d", n)
	}
	offset := n - 1
	if offset > len(rows) {
		offset = len(rows)
	}
	return rows[offset:], nil
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
