package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var ErrSyntax = errors.New("path syntax error")

// KPath is one segment of a path, linked to the rest of the path.
// Exactly one of Field and Index is set.
type KPath struct {
	Field *string // Group member name
	Index *int    // Array or list index
	Next  *KPath  // Next segment, nil for the last one
}

func Field(name string) *KPath {
	return &KPath{Field: &name}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the canonical form of the path: names joined by '.',
// indices in brackets.
//
//	KPath{Field: &"a", Next: &KPath{Field: &"b"}} → "a.b"
//	KPath{Field: &"a", Next: &KPath{Index: &0}} → "a[0]"
//	KPath{Index: &0, Next: &KPath{Field: &"b"}} → "[0].b"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Field)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the canonical form of this segment alone.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return *p.Field
	}
	if p.Index != nil {
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

// Len returns the number of segments in p.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the last segment of p.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of p without its last segment; nil if p has
// a single segment.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Parent()
	return res
}

// Append returns a copy of p followed by q.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q
	}
	res := p.copySegment()
	res.Next = p.Next.Append(q)
	return res
}

func (p *KPath) copySegment() *KPath {
	res := &KPath{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
	}
	return res
}

// Parse parses a path.
//
// Examples:
//   - "a.b.c" → 3 member segments
//   - "a.list.[2]", "a.list[2]", "a.list.2" → 2 member segments and an index
//   - "a/b:c" → same as "a.b.c"
//   - "" → nil (the starting setting itself)
//
// Empty segments, unterminated or negative indices and characters that
// cannot appear in a name are syntax errors.
func Parse(path string) (*KPath, error) {
	if path == "" {
		return nil, nil
	}
	var head, tail *KPath
	add := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	afterSep := true
	i := 0
	for i < len(path) {
		c := path[i]
		switch {
		case isSep(c):
			if afterSep {
				return nil, fmt.Errorf("%w: empty segment at offset %d in %q", ErrSyntax, i, path)
			}
			afterSep = true
			i++
		case c == '[':
			j := bytes.IndexByte([]byte(path[i:]), ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index at offset %d in %q", ErrSyntax, i, path)
			}
			idx, err := parseIndex(path[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index at offset %d in %q: %w", ErrSyntax, i, path, err)
			}
			add(Index(idx))
			afterSep = false
			i += j + 1
		case isNameChar(c):
			if !afterSep {
				return nil, fmt.Errorf("%w: missing separator at offset %d in %q", ErrSyntax, i, path)
			}
			j := i
			for j < len(path) && isNameChar(path[j]) {
				j++
			}
			seg := path[i:j]
			switch {
			case allDigits(seg):
				idx, err := parseIndex(seg)
				if err != nil {
					return nil, fmt.Errorf("%w: bad index at offset %d in %q: %w", ErrSyntax, i, path, err)
				}
				add(Index(idx))
			case isNameStart(seg[0]):
				add(Field(seg))
			default:
				return nil, fmt.Errorf("%w: bad name %q in %q", ErrSyntax, seg, path)
			}
			afterSep = false
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrSyntax, c, i, path)
		}
	}
	if afterSep {
		return nil, fmt.Errorf("%w: trailing separator in %q", ErrSyntax, path)
	}
	return head, nil
}

// MustParse is like Parse but panics on error.
func MustParse(path string) *KPath {
	kp, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return kp
}

// Split splits a path into its first segment and the rest.
// Panics if the path cannot be parsed.
//
//   - Split("a.b.c") → ("a", "b.c")
//   - Split("[0].b") → ("[0]", "b")
//   - Split("a") → ("a", "")
func Split(path string) (first, rest string) {
	kp := MustParse(path)
	if kp == nil {
		return "", ""
	}
	return kp.SegmentString(), kp.Next.String()
}

// RSplit splits a path into its parent path and last segment.
// Panics if the path cannot be parsed.
//
//   - RSplit("a.b.c") → ("a.b", "c")
//   - RSplit("a[0]") → ("a", "[0]")
//   - RSplit("a") → ("", "a")
func RSplit(path string) (parent, last string) {
	kp := MustParse(path)
	if kp == nil {
		return "", ""
	}
	return kp.Parent().String(), kp.Last().SegmentString()
}

// Join joins two paths.
//
//   - Join("a", "b.c") → "a.b.c"
//   - Join("a", "[0]") → "a[0]"
//   - Join("", "b") → "b"
func Join(prefix, suffix string) string {
	switch {
	case prefix == "":
		return suffix
	case suffix == "":
		return prefix
	case suffix[0] == '[':
		return prefix + suffix
	default:
		return prefix + "." + suffix
	}
}

func isSep(c byte) bool {
	return c == '.' || c == '/' || c == ':'
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '*'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-' || c == '_'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func parseIndex(s string) (int, error) {
	if !allDigits(s) {
		return 0, fmt.Errorf("index %q is not a non-negative integer", s)
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return i, nil
}
