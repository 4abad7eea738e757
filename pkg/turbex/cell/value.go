// Package cell defines the scalar value held by one spreadsheet cell and the
// occupancy predicates the rest of the engine builds on.
package cell

import (
	"strconv"
	"strings"
)

// Kind discriminates the value variants.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindBool
)

// Value is a tagged union over the scalar types a cell can hold: null, text,
// number or boolean. The zero Value is the null marker. Values are compared
// by == in tests and are never inspected by reflection.
type Value struct {
	kind Kind
	text string
	num  float64
	flag bool
}

// Null returns the null marker.
func Null() Value {
	return Value{}
}

// Text returns a text value. The empty string is a valid text value distinct
// from null.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null marker.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// String returns the display form: text as-is, numbers without a trailing
// zero fraction, booleans as TRUE or FALSE, null as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.flag {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// Float returns the numeric reading of v. Numbers convert directly and text
// converts when its trimmed form parses as a float. Null and boolean values
// do not convert.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Native returns the value as the plain Go type a spreadsheet writer expects:
// nil, string, float64 or bool.
func (v Value) Native() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	default:
		return nil
	}
}

// Parse recovers a typed Value from the string form a worksheet reader
// yields. The empty string maps to null, TRUE and FALSE map to booleans,
// parseable numbers map to numeric values, everything else stays text.
func Parse(raw string) Value {
	if raw == "" {
		return Null()
	}
	switch raw {
	case "TRUE":
		return Bool(true)
	case "FALSE":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}
