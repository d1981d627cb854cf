package data

import "strconv"

// ValueKind tags the concrete type held by a Value
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInteger
	KindText
	KindReal
)

// Value is a tagged literal cell value: Integer, Text, Real or Null.
// The zero Value is Null.
type Value struct {
	Kind ValueKind
	Int  int64
	Real float64
	Text string
}

// Null is the absent value.
var Null = Value{}

// Integer wraps a signed integer literal
func Integer(v int64) Value {
	return Value{Kind: KindInteger, Int: v}
}

// Text wraps a string literal
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Real wraps a floating-point literal
func Real(f float64) Value {
	return Value{Kind: KindReal, Real: f}
}

// IsNull reports whether the value is Null
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Equal reports structural, type-sensitive equality.
// Values of different kinds are never equal: Integer(1) != Real(1.0).
// Null equals Null; this is structural equality, not SQL tri-valued logic.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindInteger:
		return v.Int == o.Int
	case KindText:
		return v.Text == o.Text
	case KindReal:
		return v.Real == o.Real
	}
	return false
}

// String renders the value for display and for expression-derived column names
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindText:
		return v.Text
	case KindReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	default:
		return "NULL"
	}
}
