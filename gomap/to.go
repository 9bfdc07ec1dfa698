package gomap

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/signadot/setting-format/go-setting/ir"
)

// ToIR converts a Go value to a detached setting tree. Structs and maps
// with string keys become groups, maps in sorted key order. Slices and
// arrays of scalars become arrays, other slices lists. Integers that fit
// 32 bits become Int settings unless their Go type is int64 or uint64.
// Nil pointers and interfaces are omitted from groups and lists and are
// an error at the top.
func ToIR(v any) (*ir.Node, error) {
	n, err := toIR(reflect.ValueOf(v), "")
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &MarshalError{Message: "cannot marshal nil"}
	}
	return n, nil
}

// toIR returns nil for nil pointers and interfaces.
func toIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return nil, nil
	}
	typ := val.Type()
	if typ == nodeType {
		if val.IsNil() {
			return nil, nil
		}
		return val.Interface().(*ir.Node).Clone(), nil
	}
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil, nil
		}
		return toIR(val.Elem(), fieldPath)
	case reflect.Struct:
		return structToIR(val, fieldPath)
	case reflect.Map:
		return mapToIR(val, fieldPath)
	case reflect.Slice, reflect.Array:
		return seqToIR(val, fieldPath)
	}
	v, err := scalar(val, fieldPath)
	if err != nil {
		return nil, err
	}
	return ir.FromValue(v), nil
}

func scalar(val reflect.Value, fieldPath string) (ir.Value, error) {
	switch val.Kind() {
	case reflect.String:
		return ir.String(val.String()), nil
	case reflect.Bool:
		return ir.Bool(val.Bool()), nil
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ir.Value{}, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("float %g has no literal form", f), Err: ir.ErrInvalidOperation}
		}
		return ir.Float64(f), nil
	case reflect.Int64:
		return ir.Int64(val.Int()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return intValue(val.Int()), nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		u := val.Uint()
		if u > math.MaxInt64 {
			return ir.Value{}, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows int64", u)}
		}
		if val.Kind() == reflect.Uint64 {
			return ir.Int64(int64(u)), nil
		}
		return intValue(int64(u)), nil
	default:
		return ir.Value{}, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", val.Type())}
	}
}

func intValue(i int64) ir.Value {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return ir.Int64(i)
	}
	return ir.Int32(int32(i))
}

func structToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	fields, err := structFields(val.Type())
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	g := ir.NewGroup()
	for _, f := range fields {
		fv := val.Field(f.Index)
		if f.Optional && fv.IsZero() {
			continue
		}
		path := joinPath(fieldPath, f.Name)
		n, err := toIR(fv, path)
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue
		}
		if err := g.Attach(f.Name, n); err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
	}
	return g, nil
}

func mapToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported map key type: %s", val.Type().Key())}
	}
	keys := val.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	g := ir.NewGroup()
	for _, k := range keys {
		path := joinPath(fieldPath, k.String())
		n, err := toIR(val.MapIndex(k), path)
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue
		}
		if err := g.Attach(k.String(), n); err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
	}
	return g, nil
}

func seqToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && val.IsNil() {
		return nil, nil
	}
	elts := make([]*ir.Node, 0, val.Len())
	for i := range val.Len() {
		n, err := toIR(val.Index(i), elemPath(fieldPath, i))
		if err != nil {
			return nil, err
		}
		if n != nil {
			elts = append(elts, n)
		}
	}
	if res, ok := asArray(elts); ok {
		return res, nil
	}
	lst := ir.NewList()
	for _, e := range elts {
		if err := lst.Attach("", e); err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
	}
	return lst, nil
}

// asArray returns elts as an array if they are scalars of one type,
// widening Int to Int64 when both occur.
func asArray(elts []*ir.Node) (*ir.Node, bool) {
	var t ir.Type
	for i, e := range elts {
		et := e.Type()
		switch {
		case !et.IsScalar():
			return nil, false
		case i == 0, et == t:
			t = et
		case et.IsInteger() && t.IsInteger():
			t = ir.Int64Type
		default:
			return nil, false
		}
	}
	arr := ir.NewArray()
	for i, e := range elts {
		v := e.Value()
		if t == ir.Int64Type && v.Type() == ir.IntType {
			v = ir.Int64(int64(v.Any().(int32)))
		}
		if err := arr.SetElem(i, v); err != nil {
			return nil, false
		}
	}
	return arr, true
}
