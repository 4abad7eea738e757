package landing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/refs"
)

// WritePlan is a fully resolved placement: where the grid's top-left cell
// goes, the landing rectangle it claims and which absolute columns will
// actually receive data.
type WritePlan struct {
	StartRow int
	StartCol int
	Width    int
	Height   int
	// RowEnd and ColEnd close the landing rectangle: rows StartRow through
	// RowEnd in columns StartCol through ColEnd, all 1-based inclusive.
	RowEnd     int
	ColEnd     int
	TargetCols []int
}

// BuildPlan resolves where the shaped grid lands on the snapshotted sheet.
//
// A blank startRowSpec selects append mode: the grid starts one row below
// the highest occupied row in its target columns. A non-blank spec is an
// explicit 1-based start row. Either way the landing zone's target columns
// are probed first and any occupied cell there fails the plan with a
// DestBlocked error carrying the zone and the first blocker; nothing is
// ever silently overwritten.
//
// Returns (nil, nil) when the grid is empty or carries no content at all,
// meaning there is nothing to write.
func BuildPlan(snap *Snapshot, shaped [][]cell.Value, startColLetters, startRowSpec string) (*WritePlan, error) {
	height := len(shaped)
	width := 0
	for _, row := range shaped {
		if len(row) > width {
			width = len(row)
		}
	}
	if height == 0 || width == 0 {
		return nil, nil
	}

	startCol, err := refs.ColumnLettersToIndex(startColLetters)
	if err != nil {
		return nil, err
	}
	colEnd := startCol + width - 1

	offsets := TargetColOffsets(shaped)
	if len(offsets) == 0 {
		return nil, nil
	}
	targetCols := make([]int, len(offsets))
	for i, off := range offsets {
		targetCols[i] = startCol + off
	}

	appendMode := strings.TrimSpace(startRowSpec) == ""
	var startRow int
	if appendMode {
		startRow = ScanTargetCols(snap, targetCols) + 1
	} else {
		n, convErr := strconv.Atoi(strings.TrimSpace(startRowSpec))
		if convErr != nil {
			return nil, apperr.Newf(apperr.CodeBadSpec, "bad start row %q", startRowSpec)
		}
		if n < 1 {
			return nil, apperr.Newf(apperr.CodeBadSpec, "start row must be 1 or higher, got %d", n)
		}
		startRow = n
	}
	rowEnd := startRow + height - 1

	if blocker, found := ProbeTargetCols(snap, startRow, rowEnd, targetCols); found {
		return nil, blockedError(appendMode, startCol, colEnd, startRow, rowEnd, targetCols, blocker)
	}

	return &WritePlan{
		StartRow:   startRow,
		StartCol:   startCol,
		Width:      width,
		Height:     height,
		RowEnd:     rowEnd,
		ColEnd:     colEnd,
		TargetCols: targetCols,
	}, nil
}

func blockedError(appendMode bool, colStart, colEnd, rowStart, rowEnd int, targetCols []int, blocker Blocker) *apperr.Error {
	letters := make([]string, len(targetCols))
	for i, col := range targetCols {
		letters[i] = colName(col)
	}
	return &apperr.Error{
		Code:    apperr.CodeDestBlocked,
		Message: "destination landing zone already has data",
		Details: map[string]any{
			"appendMode":     appendMode,
			"targetStart":    fmt.Sprintf("%s%d", colName(colStart), rowStart),
			"landingCols":    fmt.Sprintf("%s:%s", colName(colStart), colName(colEnd)),
			"landingRows":    fmt.Sprintf("%d:%d", rowStart, rowEnd),
			"targetDataCols": letters,
			"firstBlocker": map[string]any{
				"row":       blocker.Row,
				"col":       blocker.Col,
				"colLetter": colName(blocker.Col),
				"value":     blocker.Value.Native(),
			},
		},
	}
}

// colName renders a 1-based column index for error details, falling back to
// the bare number when the index is out of the letter codec's range.
func colName(col int) string {
	name, err := refs.IndexToColumnLetters(col)
	if err != nil {
		return strconv.Itoa(col)
	}
	return name
}
