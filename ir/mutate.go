package ir

import (
	"fmt"
	"slices"

	"github.com/signadot/setting-format/go-setting/format"
)

// ValidName reports whether name may be used as a group member name.
// Names start with a letter or '*' and continue with letters, digits,
// '-', '_' or '*'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '*':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return false
		}
	}
	return true
}

func (n *Node) stale() error {
	if n.removed {
		return fmt.Errorf("%w: setting %q was removed", ErrStaleReference, n.name)
	}
	return nil
}

// checkChild validates adding a child of type t called name to n. With
// replace, an existing member called name is not a conflict.
func (n *Node) checkChild(name string, t Type, replace bool) error {
	if err := n.stale(); err != nil {
		return err
	}
	switch n.val.typ {
	case GroupType:
		if name == "" {
			return fmt.Errorf("%w: unnamed setting in group %q", ErrInvalidOperation, n.Path())
		}
		if !ValidName(name) {
			return fmt.Errorf("%w: invalid setting name %q", ErrInvalidOperation, name)
		}
		if n.Member(name) != nil && !replace {
			return fmt.Errorf("%w: %q already has a setting named %q", ErrDuplicateName, n.Path(), name)
		}
	case ArrayType:
		if name != "" {
			return fmt.Errorf("%w: named setting %q in array %q", ErrInvalidOperation, name, n.Path())
		}
		if !t.IsScalar() {
			return fmt.Errorf("%w: array elements must be scalars, not %s", ErrInvalidOperation, t)
		}
		if et := n.ElemType(); et != NoneType && et != t {
			return fmt.Errorf("%w: array %q holds %s, not %s", ErrTypeMismatch, n.Path(), et, t)
		}
	case ListType:
		if name != "" {
			return fmt.Errorf("%w: named setting %q in list %q", ErrInvalidOperation, name, n.Path())
		}
	default:
		return fmt.Errorf("%w: %s setting %q is not an aggregate", ErrInvalidOperation, n.val.typ, n.Path())
	}
	return nil
}

// ElemType returns the established element type of an array, or
// NoneType if n is empty or not an array.
func (n *Node) ElemType() Type {
	if n.val.typ != ArrayType || len(n.values) == 0 {
		return NoneType
	}
	return n.values[0].val.typ
}

// Add creates a child of type t. Group members need a name, array and
// list elements must be unnamed.
func (n *Node) Add(name string, t Type) (*Node, error) {
	if err := n.checkChild(name, t, false); err != nil {
		return nil, err
	}
	child := &Node{val: Value{typ: t}}
	n.append(name, child)
	return child, nil
}

// Attach adds the detached tree child to n under name, subject to the
// same rules as Add.
func (n *Node) Attach(name string, child *Node) error {
	if err := n.checkAttach(name, child, false); err != nil {
		return err
	}
	n.append(name, child)
	return nil
}

// ReplaceMember attaches the detached tree child to the group n under
// name, at the end, removing any existing member called name first. On
// error n is unchanged.
func (n *Node) ReplaceMember(name string, child *Node) error {
	if err := n.stale(); err != nil {
		return err
	}
	if n.val.typ != GroupType {
		return fmt.Errorf("%w: %s setting %q is not a group", ErrInvalidOperation, n.val.typ, n.Path())
	}
	if err := n.checkAttach(name, child, true); err != nil {
		return err
	}
	if old := n.Member(name); old != nil {
		if err := old.Remove(); err != nil {
			return err
		}
	}
	n.append(name, child)
	return nil
}

func (n *Node) checkAttach(name string, child *Node, replace bool) error {
	if err := child.stale(); err != nil {
		return err
	}
	if child.parent != nil || child == n.Root() {
		return fmt.Errorf("%w: setting is already attached", ErrInvalidOperation)
	}
	if err := n.checkChild(name, child.val.typ, replace); err != nil {
		return err
	}
	return child.Visit(func(y *Node, _ bool) (bool, error) {
		return true, checkFinite(y.val)
	})
}

func (n *Node) append(name string, child *Node) {
	child.name = name
	child.parent = n
	child.index = len(n.values)
	child.autoConvert = false
	n.values = append(n.values, child)
}

func (n *Node) SetInt32(v int32) error { return n.Set(Int32(v)) }
func (n *Node) SetInt64(v int64) error { return n.Set(Int64(v)) }
func (n *Node) SetFloat64(v float64) error { return n.Set(Float64(v)) }
func (n *Node) SetBool(v bool) error { return n.Set(Bool(v)) }
func (n *Node) SetString(v string) error { return n.Set(String(v)) }

// Set stores the scalar v in n. A node of type NoneType takes the type
// of v. Otherwise the type of n never changes: v must have the same
// type, or auto-convert must be on and v convertible to the type of n.
func (n *Node) Set(v Value) error {
	if err := n.stale(); err != nil {
		return err
	}
	if !v.typ.IsScalar() {
		return fmt.Errorf("%w: cannot store %s in %q", ErrTypeMismatch, v.typ, n.Path())
	}
	if err := checkFinite(v); err != nil {
		return err
	}
	cur := n.val.typ
	switch {
	case cur == NoneType, cur == v.typ:
		n.val = v
		return nil
	case cur.IsAggregate():
		return fmt.Errorf("%w: cannot store %s in %s setting %q", ErrTypeMismatch, v.typ, cur, n.Path())
	case !n.AutoConvert():
		return fmt.Errorf("%w: cannot store %s in %s setting %q", ErrTypeMismatch, v.typ, cur, n.Path())
	}
	cv, err := convert(v, cur)
	if err != nil {
		return fmt.Errorf("setting %q: %w", n.Path(), err)
	}
	n.val = cv
	return nil
}

// SetElem stores v at index i of an array or list; i == Len() appends.
// Arrays require v to have the established element type regardless of
// auto-convert. On failure n is unchanged.
func (n *Node) SetElem(i int, v Value) error {
	if err := n.stale(); err != nil {
		return err
	}
	if n.val.typ != ArrayType && n.val.typ != ListType {
		return fmt.Errorf("%w: %s setting %q is not an array or list", ErrInvalidOperation, n.val.typ, n.Path())
	}
	if !v.typ.IsScalar() {
		return fmt.Errorf("%w: cannot store %s element in %q", ErrTypeMismatch, v.typ, n.Path())
	}
	if err := checkFinite(v); err != nil {
		return err
	}
	if i < 0 || i > len(n.values) {
		return fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, i, len(n.values), n.Path())
	}
	if et := n.ElemType(); et != NoneType && et != v.typ {
		return fmt.Errorf("%w: array %q holds %s, not %s", ErrTypeMismatch, n.Path(), et, v.typ)
	}
	if i == len(n.values) {
		n.append("", &Node{val: v})
		return nil
	}
	return n.values[i].Set(v)
}

// SetFormat sets the display format of an integer setting.
func (n *Node) SetFormat(f format.Format) error {
	if err := n.stale(); err != nil {
		return err
	}
	if !n.val.typ.IsInteger() {
		return fmt.Errorf("%w: format %s on %s setting %q", ErrInvalidOperation, f, n.val.typ, n.Path())
	}
	if _, err := f.MarshalText(); err != nil {
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	n.format = f
	return nil
}

// Remove detaches n from its parent. n and all its descendants become
// stale.
func (n *Node) Remove() error {
	if err := n.stale(); err != nil {
		return err
	}
	p := n.parent
	if p == nil {
		return fmt.Errorf("%w: cannot remove the root setting", ErrInvalidOperation)
	}
	p.values = slices.Delete(p.values, n.index, n.index+1)
	for i := n.index; i < len(p.values); i++ {
		p.values[i].index = i
	}
	_ = n.Visit(func(y *Node, _ bool) (bool, error) {
		y.removed = true
		return true, nil
	})
	n.parent = nil
	return nil
}

// RemoveMember removes the group member called name.
func (n *Node) RemoveMember(name string) error {
	if err := n.stale(); err != nil {
		return err
	}
	if n.val.typ != GroupType {
		return fmt.Errorf("%w: %s setting %q is not a group", ErrInvalidOperation, n.val.typ, n.Path())
	}
	m := n.Member(name)
	if m == nil {
		return fmt.Errorf("%w: %q has no setting named %q", ErrInvalidOperation, n.Path(), name)
	}
	return m.Remove()
}

// RemoveElem removes the element at index i of an aggregate.
func (n *Node) RemoveElem(i int) error {
	if err := n.stale(); err != nil {
		return err
	}
	if !n.val.typ.IsAggregate() {
		return fmt.Errorf("%w: %s setting %q is not an aggregate", ErrInvalidOperation, n.val.typ, n.Path())
	}
	if i < 0 || i >= len(n.values) {
		return fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, i, len(n.values), n.Path())
	}
	return n.values[i].Remove()
}
