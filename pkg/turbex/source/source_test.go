package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
)

func writeTestXLSX(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Qty")
	f.SetCellValue("Sheet1", "A2", "apple")
	f.SetCellValue("Sheet1", "B2", 10)
	f.SetCellValue("Sheet1", "A3", "pear")
	f.SetCellValue("Sheet1", "B3", 2.5)
	f.SetCellValue("Sheet1", "B4", true)

	path := filepath.Join(t.TempDir(), "source.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeTestXLSX(t)

	rows, err := LoadXLSX(path, "Sheet1")
	if err != nil {
		t.Fatalf("LoadXLSX failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	if rows[0][0] != cell.Text("Name") {
		t.Errorf("Expected Text(\"Name\"), got %#v", rows[0][0])
	}
	if rows[1][1] != cell.Number(10) {
		t.Errorf("Expected Number(10), got %#v", rows[1][1])
	}
	if rows[2][1] != cell.Number(2.5) {
		t.Errorf("Expected Number(2.5), got %#v", rows[2][1])
	}
	if rows[3][1] != cell.Bool(true) {
		t.Errorf("Expected Bool(true), got %#v", rows[3][1])
	}
	// A4 was never written; normalization makes it a null cell.
	if rows[3][0] != cell.Null() {
		t.Errorf("Expected Null, got %#v", rows[3][0])
	}
}

func TestLoadXLSXDefaultSheet(t *testing.T) {
	path := writeTestXLSX(t)

	rows, err := LoadXLSX(path, "")
	if err != nil {
		t.Fatalf("LoadXLSX failed: %v", err)
	}
	if rows[0][0] != cell.Text("Name") {
		t.Errorf("Expected the first sheet, got %#v", rows[0][0])
	}
}

func TestLoadXLSXSheetNotFound(t *testing.T) {
	path := writeTestXLSX(t)

	_, err := LoadXLSX(path, "Nope")
	if apperr.CodeOf(err) != apperr.CodeSheetNotFound {
		t.Errorf("Expected SheetNotFound, got %v", err)
	}
}

func TestLoadXLSXMissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"), "Sheet1")
	if apperr.CodeOf(err) != apperr.CodeSourceReadFailed {
		t.Errorf("Expected SourceReadFailed, got %v", err)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "Name,Qty\napple,10\npear,,extra\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	rows, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	// Ragged rows are padded to the widest record.
	if len(rows[0]) != 3 {
		t.Errorf("Expected width 3, got %d", len(rows[0]))
	}

	// CSV fields stay text, numbers included; empty fields stay empty text.
	if rows[1][1] != cell.Text("10") {
		t.Errorf("Expected Text(\"10\"), got %#v", rows[1][1])
	}
	if rows[2][1] != cell.Text("") {
		t.Errorf("Expected Text(\"\"), got %#v", rows[2][1])
	}
	// Padding beyond the record is null, not empty text.
	if rows[0][2] != cell.Null() {
		t.Errorf("Expected Null padding, got %#v", rows[0][2])
	}
}

func TestLoadDispatch(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "upper.CSV")
	if err := os.WriteFile(csvPath, []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	rows, err := Load(csvPath, "ignored")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rows[0][0] != cell.Text("a") {
		t.Errorf("Expected the CSV loader for .CSV, got %#v", rows[0][0])
	}

	xlsxPath := writeTestXLSX(t)
	rows, err = Load(xlsxPath, "Sheet1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rows[0][0] != cell.Text("Name") {
		t.Errorf("Expected the XLSX loader, got %#v", rows[0][0])
	}
}

func TestCache(t *testing.T) {
	path := writeTestXLSX(t)
	c := NewCache()

	first, err := c.Load(path, "Sheet1")
	if err != nil {
		t.Fatalf("Cache load failed: %v", err)
	}
	second, err := c.Load(path, "Sheet1")
	if err != nil {
		t.Fatalf("Cache reload failed: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Expected one cached table, got %d", c.Len())
	}
	// Same backing table on a hit.
	if &first[0] != &second[0] {
		t.Error("Expected the cached table to be returned on a hit")
	}

	// Errors are not cached.
	if _, err := c.Load(path, "Nope"); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
	if c.Len() != 1 {
		t.Errorf("Expected the failed load to stay uncached, got %d entries", c.Len())
	}
}

func TestCacheNil(t *testing.T) {
	path := writeTestXLSX(t)

	var c *Cache
	rows, err := c.Load(path, "Sheet1")
	if err != nil {
		t.Fatalf("Nil cache load failed: %v", err)
	}
	if rows[0][0] != cell.Text("Name") {
		t.Errorf("Expected a read-through load, got %#v", rows[0][0])
	}
}
