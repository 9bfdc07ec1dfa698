package ir

import "fmt"

// get returns the value of n as type t, converting if the tree has
// auto-convert on.
func (n *Node) get(t Type) (Value, error) {
	if err := n.stale(); err != nil {
		return Value{}, err
	}
	if n.val.typ == t {
		return n.val, nil
	}
	if !n.AutoConvert() || !n.val.typ.IsScalar() {
		return Value{}, fmt.Errorf("%w: %s setting %q read as %s", ErrTypeMismatch, n.val.typ, n.Path(), t)
	}
	v, err := convert(n.val, t)
	if err != nil {
		return Value{}, fmt.Errorf("setting %q: %w", n.Path(), err)
	}
	return v, nil
}

func (n *Node) Int32() (int32, error) {
	v, err := n.get(IntType)
	if err != nil {
		return 0, err
	}
	return int32(v.i), nil
}

func (n *Node) Int64() (int64, error) {
	v, err := n.get(Int64Type)
	if err != nil {
		return 0, err
	}
	return v.i, nil
}

func (n *Node) Float64() (float64, error) {
	v, err := n.get(FloatType)
	if err != nil {
		return 0, err
	}
	return v.f, nil
}

func (n *Node) Bool() (bool, error) {
	v, err := n.get(BoolType)
	if err != nil {
		return false, err
	}
	return v.b, nil
}

// Str returns the value of a string setting. Strings are never
// converted.
func (n *Node) Str() (string, error) {
	if err := n.stale(); err != nil {
		return "", err
	}
	if n.val.typ != StringType {
		return "", fmt.Errorf("%w: %s setting %q read as %s", ErrTypeMismatch, n.val.typ, n.Path(), StringType)
	}
	return n.val.s, nil
}
