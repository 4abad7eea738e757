package models

// SheetResult reports the outcome of one sheet extraction. A successful run
// has Message "OK" when rows were written and "0 rows written" otherwise; a
// failed run carries the error code, message and details instead.
type SheetResult struct {
	SourcePath   string         `json:"source_path"`
	RecipeName   string         `json:"recipe_name"`
	SheetName    string         `json:"sheet_name"`
	DestFile     string         `json:"dest_file"`
	DestSheet    string         `json:"dest_sheet"`
	RowsWritten  int            `json:"rows_written"`
	Message      string         `json:"message"`
	ErrorCode    string         `json:"error_code,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	ErrorDetails map[string]any `json:"error_details,omitempty"`
}

// Failed reports whether the result carries an error.
func (r SheetResult) Failed() bool {
	return r.ErrorCode != ""
}

// RunReport aggregates the results of one batch run. OK is false as soon as
// any item fails; the batch stops at the first failure, so a failed report's
// last result is the failure.
type RunReport struct {
	OK      bool          `json:"ok"`
	Results []SheetResult `json:"results"`
}

// RowsWritten sums the rows written across all results.
func (r RunReport) RowsWritten() int {
	total := 0
	for _, res := range r.Results {
		total += res.RowsWritten
	}
	return total
}
