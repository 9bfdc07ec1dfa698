package ir

import (
	"fmt"
	"math"
)

// Value is a scalar setting value. The zero Value has type NoneType.
type Value struct {
	typ Type
	i   int64
	f   float64
	b   bool
	s   string
}

func Int32(v int32) Value { return Value{typ: IntType, i: int64(v)} }
func Int64(v int64) Value { return Value{typ: Int64Type, i: v} }
func Float64(v float64) Value { return Value{typ: FloatType, f: v} }
func Bool(v bool) Value { return Value{typ: BoolType, b: v} }
func String(v string) Value { return Value{typ: StringType, s: v} }

func (v Value) Type() Type { return v.typ }

// Any returns the payload as int32, int64, float64, bool, string or nil.
func (v Value) Any() any {
	switch v.typ {
	case IntType:
		return int32(v.i)
	case Int64Type:
		return v.i
	case FloatType:
		return v.f
	case BoolType:
		return v.b
	case StringType:
		return v.s
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.typ {
	case IntType, Int64Type:
		return fmt.Sprintf("%s(%d)", v.typ, v.i)
	case FloatType:
		return fmt.Sprintf("%s(%g)", v.typ, v.f)
	case BoolType:
		return fmt.Sprintf("%s(%t)", v.typ, v.b)
	case StringType:
		return fmt.Sprintf("%s(%q)", v.typ, v.s)
	default:
		return v.typ.String()
	}
}

// checkFinite rejects NaN and infinite floats, which have no literal
// form.
func checkFinite(v Value) error {
	if v.typ == FloatType && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
		return fmt.Errorf("%w: float %g has no literal form", ErrInvalidOperation, v.f)
	}
	return nil
}

// convert converts v to type to following the auto-convert rules:
//
//	to \ from   Int        Int64      Float      Bool
//	Int         =          in range   truncate   0/1
//	Int64       widen      =          truncate   0/1
//	Float       widen      widen      =          -
//	Bool        != 0       != 0       -          =
//
// Strings only convert to strings.
func convert(v Value, to Type) (Value, error) {
	if v.typ == to {
		return v, nil
	}
	switch to {
	case IntType:
		switch v.typ {
		case Int64Type:
			if v.i < math.MinInt32 || v.i > math.MaxInt32 {
				return Value{}, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, v.i, to)
			}
			return Int32(int32(v.i)), nil
		case FloatType:
			if math.IsNaN(v.f) || v.f < math.MinInt32 || v.f > math.MaxInt32 {
				return Value{}, fmt.Errorf("%w: %g overflows %s", ErrTypeMismatch, v.f, to)
			}
			return Int32(int32(v.f)), nil
		case BoolType:
			return Int32(int32(boolInt(v.b))), nil
		}
	case Int64Type:
		switch v.typ {
		case IntType:
			return Int64(v.i), nil
		case FloatType:
			if math.IsNaN(v.f) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
				return Value{}, fmt.Errorf("%w: %g overflows %s", ErrTypeMismatch, v.f, to)
			}
			return Int64(int64(v.f)), nil
		case BoolType:
			return Int64(boolInt(v.b)), nil
		}
	case FloatType:
		switch v.typ {
		case IntType, Int64Type:
			return Float64(float64(v.i)), nil
		}
	case BoolType:
		switch v.typ {
		case IntType, Int64Type:
			return Bool(v.i != 0), nil
		}
	}
	return Value{}, fmt.Errorf("%w: cannot convert %s to %s", ErrTypeMismatch, v.typ, to)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
