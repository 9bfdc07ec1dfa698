package ir

import (
	"strconv"

	"github.com/signadot/setting-format/go-setting/ir/kpath"
)

// Path returns the canonical path of n from the root of its tree.
//
// Examples:
//   - Root node → ""
//   - Group member "a" → "a"
//   - Nested member → "a.b"
//   - Array element at index 0 of "a" → "a[0]"
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	prefix := n.parent.Path()
	switch n.parent.val.typ {
	case GroupType:
		if prefix == "" {
			return n.name
		}
		return prefix + "." + n.name
	default:
		return prefix + "[" + strconv.Itoa(n.index) + "]"
	}
}

// KPath returns the path of n as a parsed path.
func (n *Node) KPath() *kpath.KPath {
	if n.parent == nil {
		return nil
	}
	var seg *kpath.KPath
	if n.parent.val.typ == GroupType {
		seg = kpath.Field(n.name)
	} else {
		seg = kpath.Index(n.index)
	}
	return n.parent.KPath().Append(seg)
}

// Lookup resolves path starting at n. It returns nil if the path is
// malformed or does not denote a setting; it never modifies the tree.
//
// Example:
//
//	root.Lookup("a.b.c") navigates to member c of member b of member a
func (n *Node) Lookup(path string) *Node {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil
	}
	return n.LookupKPath(kp)
}

// LookupKPath resolves kp starting at n.
func (n *Node) LookupKPath(kp *kpath.KPath) *Node {
	if n.removed {
		return nil
	}
	res := n
	for ; kp != nil; kp = kp.Next {
		switch {
		case kp.Field != nil:
			if res.val.typ != GroupType {
				return nil
			}
			res = res.Member(*kp.Field)
		case kp.Index != nil:
			if res.val.typ != ArrayType && res.val.typ != ListType {
				return nil
			}
			res = res.At(*kp.Index)
		default:
			return nil
		}
		if res == nil {
			return nil
		}
	}
	return res
}
