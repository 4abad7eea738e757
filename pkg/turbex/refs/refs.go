// Package refs converts spreadsheet column letters and parses the row and
// column selection grammar used by sheet configurations.
//
// The grammar is a comma-separated list of tokens, each a single entry
// ("A", "7") or an inclusive range ("A-C", "2-9"). Whitespace around tokens
// and range ends is ignored, blank tokens are skipped, and reversed ranges
// are normalized. Parsing never guesses: anything else is a BadSpec error.
package refs

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
)

// ColumnLettersToIndex converts column letters to a 1-based column index
// (A is 1, Z is 26, AA is 27). Input is trimmed and case-insensitive.
func ColumnLettersToIndex(letters string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(letters))
	if s == "" {
		return 0, apperr.New(apperr.CodeBadSpec, "column letters are empty")
	}
	n, err := excelize.ColumnNameToNumber(s)
	if err != nil {
		return 0, apperr.Newf(apperr.CodeBadSpec, "bad column letters %q", letters)
	}
	return n, nil
}

// IndexToColumnLetters converts a 1-based column index to column letters
// (1 is A, 27 is AA).
func IndexToColumnLetters(index int) (string, error) {
	name, err := excelize.ColumnNumberToName(index)
	if err != nil {
		return "", apperr.Newf(apperr.CodeBadSpec, "bad column index %d", index)
	}
	return name, nil
}

// ParseColumnSpec parses a column selection like "A,C,F-H" into a sorted,
// deduplicated set of 0-based column indices. A blank spec selects nothing
// and returns an empty set, which callers treat as "all columns".
func ParseColumnSpec(spec string) ([]int, error) {
	return parseSpec(spec, func(token string) (int, error) {
		n, err := ColumnLettersToIndex(token)
		if err != nil {
			return 0, err
		}
		return n - 1, nil
	})
}

// ParseRowSpec parses a row selection like "1,3,10-12" into a sorted,
// deduplicated set of 0-based row indices. Row numbers are 1-based in the
// spec. A blank spec returns an empty set, treated by callers as "all rows".
func ParseRowSpec(spec string) ([]int, error) {
	return parseSpec(spec, func(token string) (int, error) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, apperr.Newf(apperr.CodeBadSpec, "bad row number %q", token)
		}
		if n < 1 {
			return 0, apperr.Newf(apperr.CodeBadSpec, "row number must be 1 or higher, got %d", n)
		}
		return n - 1, nil
	})
}

// parseSpec splits spec on commas and resolves each token with parseOne,
// expanding ranges written as "lo-hi". The result is sorted and unique.
func parseSpec(spec string, parseOne func(string) (int, error)) ([]int, error) {
	seen := make(map[int]struct{})
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts := strings.Split(token, "-")
		switch len(parts) {
		case 1:
			n, err := parseOne(parts[0])
			if err != nil {
				return nil, err
			}
			seen[n] = struct{}{}
		case 2:
			lo, err := parseOne(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, err
			}
			hi, err := parseOne(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, err
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for n := lo; n <= hi; n++ {
				seen[n] = struct{}{}
			}
		default:
			return nil, apperr.Newf(apperr.CodeBadSpec, "bad range token %q", token)
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}
