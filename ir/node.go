package ir

import (
	"iter"

	"github.com/signadot/setting-format/go-setting/format"
)

// Node is a setting: a group member, an array or list element, or the
// root group of a configuration.
//
// A node owns its children. The parent link is a back reference only.
type Node struct {
	val    Value
	name   string
	parent *Node
	index  int
	values []*Node

	format format.Format
	file   string
	line   int

	removed     bool
	autoConvert bool
}

// New returns a detached node of type t.
func New(t Type) *Node {
	return &Node{val: Value{typ: t}}
}

// NewGroup returns an empty detached group, suitable as a configuration root.
func NewGroup() *Node { return New(GroupType) }
func NewArray() *Node { return New(ArrayType) }
func NewList() *Node { return New(ListType) }

func FromValue(v Value) *Node {
	return &Node{val: v}
}

func FromInt32(v int32) *Node { return FromValue(Int32(v)) }
func FromInt64(v int64) *Node { return FromValue(Int64(v)) }
func FromFloat(v float64) *Node { return FromValue(Float64(v)) }
func FromBool(v bool) *Node { return FromValue(Bool(v)) }
func FromString(v string) *Node { return FromValue(String(v)) }

func (n *Node) Type() Type { return n.val.typ }

// Value returns the scalar value held by n. Aggregates return a Value
// carrying only their type.
func (n *Node) Value() Value {
	if n.val.typ.IsAggregate() {
		return Value{typ: n.val.typ}
	}
	return n.val
}

// Name returns the member name of n, or "" if n is not a group member.
func (n *Node) Name() string { return n.name }

// Index returns the position of n in its parent, or -1 for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return n.index
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Len returns the number of children of n.
func (n *Node) Len() int {
	if n.removed {
		return 0
	}
	return len(n.values)
}

// At returns the i'th child of n or nil.
func (n *Node) At(i int) *Node {
	if n.removed || i < 0 || i >= len(n.values) {
		return nil
	}
	return n.values[i]
}

// Member returns the group member called name or nil.
func (n *Node) Member(name string) *Node {
	if n.removed || n.val.typ != GroupType {
		return nil
	}
	for _, v := range n.values {
		if v.name == name {
			return v
		}
	}
	return nil
}

// Elements iterates over the children of n in order. The sequence may
// be ranged over any number of times; it does not modify the tree.
func (n *Node) Elements() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if n.removed {
			return
		}
		for i, v := range n.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Members iterates over the members of a group in insertion order.
func (n *Node) Members() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if n.removed || n.val.typ != GroupType {
			return
		}
		for _, v := range n.values {
			if !yield(v.name, v) {
				return
			}
		}
	}
}

func (n *Node) IsGroup() bool { return n.val.typ == GroupType }
func (n *Node) IsArray() bool { return n.val.typ == ArrayType }
func (n *Node) IsList() bool { return n.val.typ == ListType }
func (n *Node) IsAggregate() bool { return n.val.typ.IsAggregate() }
func (n *Node) IsNumber() bool { return n.val.typ.IsNumber() }
func (n *Node) IsScalar() bool { return n.val.typ.IsScalar() }
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsRemoved reports whether n has been removed from its tree.
func (n *Node) IsRemoved() bool { return n.removed }

// Format returns the display format hint of n.
func (n *Node) Format() format.Format { return n.format }

// SourceLine returns the 1-based line n was parsed from.
func (n *Node) SourceLine() (int, bool) {
	return n.line, n.line > 0
}

// SourceFile returns the label of the file n was parsed from.
func (n *Node) SourceFile() (string, bool) {
	return n.file, n.line > 0
}

// SetSource records where n was parsed from. It is called by the parser.
func (n *Node) SetSource(file string, line int) {
	n.file = file
	n.line = line
}

// AutoConvert reports whether typed access on the tree containing n
// converts between numeric and boolean types.
func (n *Node) AutoConvert() bool {
	return n.Root().autoConvert
}

// SetAutoConvert sets the auto-convert flag for the whole tree
// containing n.
func (n *Node) SetAutoConvert(v bool) {
	n.Root().autoConvert = v
}

// Clone returns a detached deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.cloneTo(res)
	res.autoConvert = n.AutoConvert()
	return res
}

func (n *Node) cloneTo(dst *Node) {
	dst.val = n.val
	dst.name = n.name
	dst.format = n.format
	dst.file = n.file
	dst.line = n.line
	dst.values = make([]*Node, len(n.values))
	for i, v := range n.values {
		c := &Node{parent: dst, index: i}
		v.cloneTo(c)
		dst.values[i] = c
	}
}

// Visit calls f on n before (isPost false) and after (isPost true) its
// children. If f returns false before, the children are skipped.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
