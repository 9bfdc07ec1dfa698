package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes are compared by type, then by value. Aggregates compare their
// children pairwise in order; group members compare names before
// values. Format hints and source positions are ignored.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.val.typ != b.val.typ {
		return cmp.Compare(a.val.typ, b.val.typ)
	}

	switch a.val.typ {
	case IntType, Int64Type:
		return cmp.Compare(a.val.i, b.val.i)
	case FloatType:
		return cmp.Compare(a.val.f, b.val.f)
	case StringType:
		return strings.Compare(a.val.s, b.val.s)
	case BoolType:
		if a.val.b == b.val.b {
			return 0
		}
		if !a.val.b {
			return -1
		}
		return 1
	case ArrayType, ListType, GroupType:
		return compareChildren(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same settings.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareChildren(a, b *Node) int {
	lenA := len(a.values)
	lenB := len(b.values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.values[i].name, b.values[i].name); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
