package dataframe

import (
	"strconv"
	"time"
)

// Kind identifies the storage type of a cell or column.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindTime
)

// String returns the dtype name reported by type inspection.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindString:
		return "string"
	case KindTime:
		return "datetime64"
	default:
		return "null"
	}
}

// Value is a single nullable cell. The zero value is the null marker.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	t    time.Time
}

// Null returns the absent-value marker.
func Null() Value { return Value{} }

// Int returns an integer cell.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point cell.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a text cell.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Time returns a date cell.
func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// IsNull reports whether the cell holds no data.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Kind returns the storage type of the cell.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the integer content. Zero for non-integer cells.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the numeric content. Integer cells are widened so that
// numeric predicates work on either kind.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the text content. Empty for non-string cells.
func (v Value) Str() string { return v.s }

// Date returns the date content. Zero time for non-date cells.
func (v Value) Date() time.Time { return v.t }

// Equal compares two cells. Null never equals null, matching the
// pandas convention for missing data.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNull || o.kind == KindNull {
		return false
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindTime:
		return v.t.Equal(o.t)
	}
	return false
}

// Format renders the cell for display and CSV output.
func (v Value) Format() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format("2006-01-02")
	default:
		return "null"
	}
}
