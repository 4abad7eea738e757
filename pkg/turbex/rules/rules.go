// Package rules evaluates row-filter rules against source tables.
//
// Rules run after row selection and before column selection, and address
// their target cell by absolute source column letters, so a rule on column D
// works whether or not D is part of the output.
package rules

import (
	"strconv"
	"strings"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/refs"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/table"
)

// Evaluate reports whether a single cell satisfies the rule's comparison.
//
// equals trims and compares case-insensitively, switching to numeric
// comparison when both the cell's string form and the rule value parse as
// floats; a null cell equals only a blank rule value. contains is a
// case-insensitive substring test and never matches a null cell. The
// numeric comparisons are false, never an error, when either side does not
// parse as a number.
func Evaluate(v cell.Value, rule models.Rule) (bool, error) {
	switch rule.Operator {
	case models.OpContains:
		if v.IsNull() {
			return false, nil
		}
		return strings.Contains(strings.ToLower(v.String()), strings.ToLower(rule.Value)), nil

	case models.OpEquals:
		target := strings.TrimSpace(rule.Value)
		if v.IsNull() {
			return target == "", nil
		}
		if lf, ok := v.Float(); ok {
			if rf, err := strconv.ParseFloat(target, 64); err == nil {
				return lf == rf, nil
			}
		}
		return strings.EqualFold(strings.TrimSpace(v.String()), target), nil

	case models.OpLess, models.OpGreater:
		lf, ok := v.Float()
		if !ok {
			return false, nil
		}
		rf, err := strconv.ParseFloat(strings.TrimSpace(rule.Value), 64)
		if err != nil {
			return false, nil
		}
		if rule.Operator == models.OpLess {
			return lf < rf, nil
		}
		return lf > rf, nil
	}
	return false, apperr.Newf(apperr.CodeInvalidRule, "unknown rule operator %q", rule.Operator)
}

// Apply filters rows down to those whose combined rule verdict says keep.
// An empty rule set keeps every row. Rows shorter than a rule's column are
// judged on the null marker.
func Apply(rows [][]cell.Value, ruleSet []models.Rule, combine models.CombineMode) ([][]cell.Value, error) {
	indexed := make([]table.IndexedRow, len(rows))
	for i, r := range rows {
		indexed[i] = table.IndexedRow{Index: i, Cells: r}
	}
	kept, err := ApplyIndexed(indexed, ruleSet, combine)
	if err != nil {
		return nil, err
	}
	return table.Cells(kept), nil
}

// ApplyIndexed is Apply over indexed rows, returning survivors with their
// absolute source indices intact.
func ApplyIndexed(rows []table.IndexedRow, ruleSet []models.Rule, combine models.CombineMode) ([]table.IndexedRow, error) {
	if len(ruleSet) == 0 {
		return rows, nil
	}

	mode := models.CombineMode(strings.ToUpper(strings.TrimSpace(string(combine))))
	if mode != models.CombineAnd && mode != models.CombineOr {
		return nil, apperr.Newf(apperr.CodeInvalidRule, "unknown combine mode %q", combine)
	}

	cols := make([]int, len(ruleSet))
	for i, rule := range ruleSet {
		idx, err := refs.ColumnLettersToIndex(rule.Column)
		if err != nil {
			return nil, err
		}
		cols[i] = idx - 1
	}

	var out []table.IndexedRow
	for _, row := range rows {
		keep, err := keepRow(row.Cells, ruleSet, cols, mode)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, row)
		}
	}
	return out, nil
}

func keepRow(cells []cell.Value, ruleSet []models.Rule, cols []int, mode models.CombineMode) (bool, error) {
	verdicts := make([]bool, len(ruleSet))
	for i, rule := range ruleSet {
		target := cell.Null()
		if cols[i] < len(cells) {
			target = cells[cols[i]]
		}
		matched, err := Evaluate(target, rule)
		if err != nil {
			return false, err
		}
		switch rule.Mode {
		case models.RuleModeInclude:
			verdicts[i] = matched
		case models.RuleModeExclude:
			verdicts[i] = !matched
		default:
			return false, apperr.Newf(apperr.CodeInvalidRule, "unknown rule mode %q", rule.Mode)
		}
	}

	if mode == models.CombineAnd {
		for _, v := range verdicts {
			if !v {
				return false, nil
			}
		}
		return true, nil
	}
	for _, v := range verdicts {
		if v {
			return true, nil
		}
	}
	return false, nil
}
