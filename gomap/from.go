package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/setting-format/go-setting/eval"
	"github.com/signadot/setting-format/go-setting/ir"
)

var nodeType = reflect.TypeOf((*ir.Node)(nil))

// FromIR converts a setting tree to a Go value. v must be a non-nil
// pointer. Integer settings fit any Go integer type that holds the value,
// floats accept integers, and a *ir.Node target receives a detached copy.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if node == nil {
		return &UnmarshalError{Message: "setting is nil"}
	}
	return fromIR(node, val.Elem(), "")
}

func fromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	if typ == nodeType {
		val.Set(reflect.ValueOf(node.Clone()))
		return nil
	}
	switch typ.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIR(node, val.Elem(), fieldPath)
	case reflect.String:
		s, err := node.Str()
		if err != nil {
			return mismatch(node, typ, fieldPath)
		}
		val.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := intOf(node)
		if err != nil {
			return mismatch(node, typ, fieldPath)
		}
		if val.OverflowInt(i) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("value %d overflows %s", i, typ)}
		}
		val.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := intOf(node)
		if err != nil {
			return mismatch(node, typ, fieldPath)
		}
		if i < 0 || val.OverflowUint(uint64(i)) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("value %d overflows %s", i, typ)}
		}
		val.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		var f float64
		switch node.Type() {
		case ir.FloatType:
			f, _ = node.Float64()
		case ir.IntType, ir.Int64Type:
			i, _ := intOf(node)
			f = float64(i)
		default:
			return mismatch(node, typ, fieldPath)
		}
		val.SetFloat(f)
	case reflect.Bool:
		b, err := node.Bool()
		if err != nil {
			return mismatch(node, typ, fieldPath)
		}
		val.SetBool(b)
	case reflect.Slice:
		if !node.IsArray() && !node.IsList() {
			return mismatch(node, typ, fieldPath)
		}
		res := reflect.MakeSlice(typ, node.Len(), node.Len())
		for i, e := range node.Elements() {
			if err := fromIR(e, res.Index(i), elemPath(fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(res)
	case reflect.Array:
		if !node.IsArray() && !node.IsList() {
			return mismatch(node, typ, fieldPath)
		}
		if node.Len() != typ.Len() {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d elements do not fit %s", node.Len(), typ),
			}
		}
		for i, e := range node.Elements() {
			if err := fromIR(e, val.Index(i), elemPath(fieldPath, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if !node.IsGroup() || typ.Key().Kind() != reflect.String {
			return mismatch(node, typ, fieldPath)
		}
		if val.IsNil() {
			val.Set(reflect.MakeMapWithSize(typ, node.Len()))
		}
		for name, m := range node.Members() {
			ev := reflect.New(typ.Elem()).Elem()
			if err := fromIR(m, ev, joinPath(fieldPath, name)); err != nil {
				return err
			}
			val.SetMapIndex(reflect.ValueOf(name).Convert(typ.Key()), ev)
		}
	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath)
	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", typ)}
		}
		if x := eval.ToAny(node); x != nil {
			val.Set(reflect.ValueOf(x))
		}
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", typ)}
	}
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if !node.IsGroup() {
		return mismatch(node, val.Type(), fieldPath)
	}
	fields, err := structFields(val.Type())
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	for _, f := range fields {
		path := joinPath(fieldPath, f.Name)
		m := node.Member(f.Name)
		if m == nil {
			if f.Required {
				return &UnmarshalError{FieldPath: path, Message: "required setting is missing"}
			}
			continue
		}
		if err := fromIR(m, val.Field(f.Index), path); err != nil {
			return err
		}
	}
	return nil
}

// intOf returns the value of an integer setting.
func intOf(node *ir.Node) (int64, error) {
	switch node.Type() {
	case ir.IntType:
		i, err := node.Int32()
		return int64(i), err
	case ir.Int64Type:
		return node.Int64()
	default:
		return 0, fmt.Errorf("%w: %s is not an integer", ir.ErrTypeMismatch, node.Type())
	}
}

func mismatch(node *ir.Node, typ reflect.Type, fieldPath string) error {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot store %s setting in %s", node.Type(), typ),
		Err:       ir.ErrTypeMismatch,
	}
}

func elemPath(prefix string, i int) string {
	return joinPath(prefix, fmt.Sprintf("[%d]", i))
}
