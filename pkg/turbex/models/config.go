// Package models defines the configuration tree consumed by the extraction
// engine and the result types it reports back. Everything here is plain data
// with JSON tags; behavior lives in the engine packages.
package models

// PasteMode selects the output shape of an extraction.
type PasteMode string

const (
	// PasteModePack writes a dense grid: selected rows and columns packed
	// together with no gaps.
	PasteModePack PasteMode = "pack"
	// PasteModeKeep preserves the relative column positions of the selection
	// inside its bounding box, leaving unselected columns as gaps.
	PasteModeKeep PasteMode = "keep"
)

// RuleMode says whether matching rows are kept or dropped.
type RuleMode string

const (
	RuleModeInclude RuleMode = "include"
	RuleModeExclude RuleMode = "exclude"
)

// RuleOperator is the comparison a rule applies to its target cell.
type RuleOperator string

const (
	OpContains RuleOperator = "contains"
	OpEquals   RuleOperator = "equals"
	OpLess     RuleOperator = "<"
	OpGreater  RuleOperator = ">"
)

// CombineMode joins the verdicts of multiple rules. Matching is
// case-insensitive, so "and" and "AND" are the same mode.
type CombineMode string

const (
	CombineAnd CombineMode = "AND"
	CombineOr  CombineMode = "OR"
)

// Rule filters rows after row selection. Column is the absolute source
// column in letters ("A", "D", "AA"), independent of the column selection.
type Rule struct {
	Mode     RuleMode     `json:"mode"`
	Column   string       `json:"column"`
	Operator RuleOperator `json:"operator"`
	Value    string       `json:"value"`
}

// Destination says where a shaped grid lands. StartRow is a 1-based row
// number as text; blank means append below existing data in the landing
// columns.
type Destination struct {
	FilePath  string `json:"file_path"`
	SheetName string `json:"sheet_name"`
	StartCol  string `json:"start_col"`
	StartRow  string `json:"start_row"`
}

// SheetConfig holds the complete settings for one extraction: what to read,
// how to select and filter it, how to shape it and where to put it.
//
// SourceStartRow skips leading rows of the source before anything else runs;
// blank means start at row 1. Blank ColumnsSpec or RowsSpec selects the
// whole used range.
type SheetConfig struct {
	Name            string      `json:"name"`
	SourceSheetName string      `json:"source_sheet_name"`
	SourceStartRow  string      `json:"source_start_row"`
	ColumnsSpec     string      `json:"columns_spec"`
	RowsSpec        string      `json:"rows_spec"`
	PasteMode       PasteMode   `json:"paste_mode"`
	RulesCombine    CombineMode `json:"rules_combine"`
	Rules           []Rule      `json:"rules"`
	Destination     Destination `json:"destination"`
}

// RecipeConfig groups the sheet extractions that run together for a source.
type RecipeConfig struct {
	Name   string        `json:"name"`
	Sheets []SheetConfig `json:"sheets"`
}

// SourceConfig is one source file and its recipes.
type SourceConfig struct {
	Path    string         `json:"path"`
	Name    string         `json:"name"`
	Recipes []RecipeConfig `json:"recipes"`
}

// ProjectConfig is the root of a saved project.
type ProjectConfig struct {
	Sources []SourceConfig `json:"sources"`
}

// RunItem is one unit of batch work: a source path plus the sheet config to
// run against it, labeled with the recipe it came from.
type RunItem struct {
	SourcePath string
	RecipeName string
	Sheet      SheetConfig
}
