package turbex

import (
	"github.com/rs/zerolog/log"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/dest"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/source"
)

// Progress receives batch lifecycle events. A nil Progress is silently
// ignored, and a panicking observer never aborts the run.
type Progress func(event string, payload any)

// Events delivered to a Progress observer.
const (
	EventStart  = "start"
	EventResult = "result"
	EventError  = "error"
	EventDone   = "done"
)

// RunAll executes the items in order, sharing one open workbook per
// destination path so consecutive items see each other's writes, and
// parsing each source file once.
//
// Each successful item saves its destination workbook immediately. The
// first failure stops the batch: the failing item is recorded as an error
// result, every workbook touched so far is saved, and remaining items do
// not run.
func RunAll(items []models.RunItem, progress Progress) models.RunReport {
	report := models.RunReport{OK: true}

	workbooks := dest.NewCache()
	defer workbooks.Close()
	sources := source.NewCache()

	for _, item := range items {
		emit(progress, EventStart, map[string]any{
			"source_path": item.SourcePath,
			"recipe_name": item.RecipeName,
			"sheet_name":  item.Sheet.Name,
		})

		result, err := runSheet(item.SourcePath, item.Sheet, item.RecipeName, sources, workbooks)
		if err != nil {
			e := apperr.Convert(err)
			result.RowsWritten = 0
			result.Message = e.Error()
			result.ErrorCode = e.Code
			result.ErrorMessage = e.Message
			result.ErrorDetails = e.Details
			report.Results = append(report.Results, result)
			report.OK = false
			emit(progress, EventError, result)
			log.Error().
				Str("code", e.Code).
				Str("sheet", item.Sheet.Name).
				Str("source", item.SourcePath).
				Msg("Batch stopped at failed extraction")
			workbooks.SaveAll()
			break
		}

		if wb, ok := workbooks.Peek(item.Sheet.Destination.FilePath); ok {
			if saveErr := wb.Save(); saveErr != nil {
				e := apperr.Convert(saveErr)
				result.RowsWritten = 0
				result.Message = e.Error()
				result.ErrorCode = e.Code
				result.ErrorMessage = e.Message
				result.ErrorDetails = e.Details
				report.Results = append(report.Results, result)
				report.OK = false
				emit(progress, EventError, result)
				log.Error().
					Str("code", e.Code).
					Str("dest", item.Sheet.Destination.FilePath).
					Msg("Batch stopped at failed save")
				break
			}
		}

		report.Results = append(report.Results, result)
		emit(progress, EventResult, result)
		log.Info().
			Str("sheet", item.Sheet.Name).
			Int("rows", result.RowsWritten).
			Str("dest", result.DestFile).
			Msg("Extraction finished")
	}

	emit(progress, EventDone, report)
	return report
}

// emit delivers one event and swallows observer panics; progress reporting
// must never take down a run.
func emit(progress Progress, event string, payload any) {
	if progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("event", event).Any("panic", r).Msg("Progress observer panicked")
		}
	}()
	progress(event, payload)
}
