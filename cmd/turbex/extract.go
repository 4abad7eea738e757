package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
)

var (
	extractSource      string
	extractSourceSheet string
	extractStartRow    string
	extractCols        string
	extractRows        string
	extractMode        string
	extractRules       []string
	extractCombine     string
	extractDest        string
	extractDestSheet   string
	extractDestCol     string
	extractDestRow     string
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run a single extraction without a project file",
		RunE:  runExtract,
	}

	fl := cmd.Flags()
	fl.StringVar(&extractSource, "source", "", "Source file (.xlsx or .csv)")
	fl.StringVar(&extractSourceSheet, "source-sheet", "", "Source sheet name (default: first sheet)")
	fl.StringVar(&extractStartRow, "source-start-row", "", "1-based row the source data starts at")
	fl.StringVar(&extractCols, "cols", "", "Column selection, e.g. A,C,F-H (default: all)")
	fl.StringVar(&extractRows, "rows", "", "Row selection, e.g. 1,3,10-12 (default: all)")
	fl.StringVar(&extractMode, "mode", "pack", "Paste mode: pack or keep")
	fl.StringArrayVar(&extractRules, "rule", nil, "Filter rule as mode,column,operator,value (repeatable)")
	fl.StringVar(&extractCombine, "combine", "AND", "How multiple rules combine: AND or OR")
	fl.StringVar(&extractDest, "dest", "", "Destination .xlsx file")
	fl.StringVar(&extractDestSheet, "dest-sheet", "", "Destination sheet (default: Sheet1)")
	fl.StringVar(&extractDestCol, "start-col", "A", "Destination start column letters")
	fl.StringVar(&extractDestRow, "start-row", "", "Destination start row; blank appends below existing data")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	switch extractMode {
	case "pack", "keep":
	default:
		return fmt.Errorf("invalid mode: %s (must be pack or keep)", extractMode)
	}

	ruleSet, err := parseRuleFlags(extractRules)
	if err != nil {
		return err
	}

	cfg := models.SheetConfig{
		Name:            "extract",
		SourceSheetName: extractSourceSheet,
		SourceStartRow:  extractStartRow,
		ColumnsSpec:     extractCols,
		RowsSpec:        extractRows,
		PasteMode:       models.PasteMode(extractMode),
		RulesCombine:    models.CombineMode(extractCombine),
		Rules:           ruleSet,
		Destination: models.Destination{
			FilePath:  extractDest,
			SheetName: extractDestSheet,
			StartCol:  extractDestCol,
			StartRow:  extractDestRow,
		},
	}

	result, err := turbex.RunSheet(extractSource, cfg, "cli")
	if err != nil {
		return errors.New(apperr.Friendly(err))
	}
	fmt.Printf("%s (%d rows into %s)\n", result.Message, result.RowsWritten, result.DestFile)
	return nil
}

func parseRuleFlags(raw []string) ([]models.Rule, error) {
	var out []models.Rule
	for _, r := range raw {
		parts := strings.SplitN(r, ",", 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid rule %q (want mode,column,operator,value)", r)
		}
		out = append(out, models.Rule{
			Mode:     models.RuleMode(strings.TrimSpace(parts[0])),
			Column:   strings.TrimSpace(parts[1]),
			Operator: models.RuleOperator(strings.TrimSpace(parts[2])),
			Value:    parts[3],
		})
	}
	return out, nil
}
