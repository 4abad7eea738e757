package source

import (
	"encoding/csv"
	"os"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/table"
)

// LoadCSV reads a CSV file into a normalized table. Every field is kept as
// text, including empty fields: CSV has no cell types and no notion of a
// never-touched cell, so "" stays an empty text value rather than null.
// Ragged records are allowed and padded by normalization.
func LoadCSV(path string) ([][]cell.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeSourceReadFailed, err, "failed to parse CSV file: "+err.Error())
	}

	rows := make([][]cell.Value, len(records))
	for i, record := range records {
		cells := make([]cell.Value, len(record))
		for j, field := range record {
			cells[j] = cell.Text(field)
		}
		rows[i] = cells
	}
	return table.Normalize(rows), nil
}
