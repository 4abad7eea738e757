package refs

import (
	"reflect"
	"testing"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
)

func TestColumnLettersToIndex(t *testing.T) {
	tests := []struct {
		letters  string
		expected int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"BA", 53},
		{"ZZ", 702},
		{"AAA", 703},
		{"XFD", 16384},
		{"a", 1},
		{" c ", 3},
	}

	for _, tt := range tests {
		got, err := ColumnLettersToIndex(tt.letters)
		if err != nil {
			t.Errorf("ColumnLettersToIndex(%q) failed: %v", tt.letters, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ColumnLettersToIndex(%q) = %d, expected %d", tt.letters, got, tt.expected)
		}
	}
}

func TestColumnLettersToIndexBad(t *testing.T) {
	for _, letters := range []string{"", "  ", "A1", "1A", "-", "A B"} {
		_, err := ColumnLettersToIndex(letters)
		if err == nil {
			t.Errorf("ColumnLettersToIndex(%q) should fail", letters)
			continue
		}
		if apperr.CodeOf(err) != apperr.CodeBadSpec {
			t.Errorf("Expected BadSpec for %q, got %s", letters, apperr.CodeOf(err))
		}
	}
}

func TestColumnRoundTrip(t *testing.T) {
	// Boundary indices around each letter-width change, plus the sheet max.
	for _, idx := range []int{1, 26, 27, 52, 53, 702, 703, 16384} {
		letters, err := IndexToColumnLetters(idx)
		if err != nil {
			t.Fatalf("IndexToColumnLetters(%d) failed: %v", idx, err)
		}
		back, err := ColumnLettersToIndex(letters)
		if err != nil {
			t.Fatalf("ColumnLettersToIndex(%q) failed: %v", letters, err)
		}
		if back != idx {
			t.Errorf("Round trip %d -> %q -> %d", idx, letters, back)
		}
	}
}

func TestIndexToColumnLettersBad(t *testing.T) {
	for _, idx := range []int{0, -1, 16385} {
		if _, err := IndexToColumnLetters(idx); err == nil {
			t.Errorf("IndexToColumnLetters(%d) should fail", idx)
		}
	}
}

func TestParseColumnSpec(t *testing.T) {
	tests := []struct {
		spec     string
		expected []int
	}{
		{"", nil},
		{"   ", nil},
		{"A", []int{0}},
		{"A,C", []int{0, 2}},
		{"C,A", []int{0, 2}},
		{"A-C", []int{0, 1, 2}},
		{"C-A", []int{0, 1, 2}},
		{"A,C,F-H", []int{0, 2, 5, 6, 7}},
		{"a, c", []int{0, 2}},
		{"A,,C", []int{0, 2}},
		{"A,A,A", []int{0}},
		{"AA", []int{26}},
		{" B - D ", []int{1, 2, 3}},
	}

	for _, tt := range tests {
		got, err := ParseColumnSpec(tt.spec)
		if err != nil {
			t.Errorf("ParseColumnSpec(%q) failed: %v", tt.spec, err)
			continue
		}
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseColumnSpec(%q) = %v, expected %v", tt.spec, got, tt.expected)
		}
	}
}

func TestParseRowSpec(t *testing.T) {
	tests := []struct {
		spec     string
		expected []int
	}{
		{"", nil},
		{"1", []int{0}},
		{"1,3", []int{0, 2}},
		{"3,1", []int{0, 2}},
		{"2-4", []int{1, 2, 3}},
		{"4-2", []int{1, 2, 3}},
		{"1,3,10-12", []int{0, 2, 9, 10, 11}},
		{"1,1,2", []int{0, 1}},
		{" 5 , 7 ", []int{4, 6}},
	}

	for _, tt := range tests {
		got, err := ParseRowSpec(tt.spec)
		if err != nil {
			t.Errorf("ParseRowSpec(%q) failed: %v", tt.spec, err)
			continue
		}
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseRowSpec(%q) = %v, expected %v", tt.spec, got, tt.expected)
		}
	}
}

func TestParseSpecBad(t *testing.T) {
	colSpecs := []string{"1", "A;B", "A-B-C", "A-", "-C"}
	for _, spec := range colSpecs {
		_, err := ParseColumnSpec(spec)
		if err == nil {
			t.Errorf("ParseColumnSpec(%q) should fail", spec)
			continue
		}
		if apperr.CodeOf(err) != apperr.CodeBadSpec {
			t.Errorf("Expected BadSpec for %q, got %s", spec, apperr.CodeOf(err))
		}
	}

	rowSpecs := []string{"A", "0", "-1", "1.5", "1-2-3", "2-"}
	for _, spec := range rowSpecs {
		_, err := ParseRowSpec(spec)
		if err == nil {
			t.Errorf("ParseRowSpec(%q) should fail", spec)
			continue
		}
		if apperr.CodeOf(err) != apperr.CodeBadSpec {
			t.Errorf("Expected BadSpec for %q, got %s", spec, apperr.CodeOf(err))
		}
	}
}
