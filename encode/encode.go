package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/token"
)

type EncState struct {
	depth          int
	tabWidth       int
	semicolons     bool
	colonGroups    bool
	colonNonGroups bool
	braceLine      bool
	floatPrec      int
	scientific     bool

	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The layout defaults are two space indentation,
// ';' after every setting, ':' for groups, '=' for other settings and
// group braces on their own line.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		tabWidth:    2,
		semicolons:  true,
		colonGroups: true,
		braceLine:   true,
		format:      format.Decimal,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node.IsGroup() {
		return encodeMembers(node, w, es)
	}
	if err := encodeValue(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	return nil
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.depth == 0 {
		return nil
	}
	if es.tabWidth == 0 {
		return writeString(w, strings.Repeat("\t", es.depth))
	}
	return writeString(w, strings.Repeat(" ", es.tabWidth*es.depth))
}

// writeNL ends the current line and indents the next one.
func writeNL(w io.Writer, es *EncState) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeIndent(w, es)
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

// encodeMembers writes the members of g, one per line, at the current
// depth.
func encodeMembers(g *ir.Node, w io.Writer, es *EncState) error {
	for name, m := range g.Members() {
		if m.Type() == ir.NoneType {
			continue
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := encodeMember(name, m, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeMember(name string, m *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.GroupType, FieldColor, name)); err != nil {
		return err
	}
	assign := "="
	if m.IsGroup() && es.colonGroups || !m.IsGroup() && es.colonNonGroups {
		assign = ":"
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := writeSep(w, es, ir.GroupType, assign); err != nil {
		return err
	}
	if m.IsGroup() && es.braceLine && m.Len() > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	} else if err := writeString(w, " "); err != nil {
		return err
	}
	if err := encodeValue(m, w, es); err != nil {
		return err
	}
	if es.semicolons {
		return writeSep(w, es, ir.GroupType, ";")
	}
	return nil
}

func encodeValue(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type() {
	case ir.GroupType:
		return encodeGroup(n, w, es)
	case ir.ArrayType:
		return encodeSeq(n, w, es, "[", "]")
	case ir.ListType:
		return encodeSeq(n, w, es, "(", ")")
	default:
		s, attr := scalarString(n, es)
		return writeString(w, applyColor(es, n.Type(), attr, s))
	}
}

func encodeGroup(g *ir.Node, w io.Writer, es *EncState) error {
	if g.Len() == 0 {
		return writeSep(w, es, ir.GroupType, "{ }")
	}
	if err := writeSep(w, es, ir.GroupType, "{"); err != nil {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.depth++
	if err := encodeMembers(g, w, es); err != nil {
		return err
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.GroupType, "}")
}

func encodeSeq(n *ir.Node, w io.Writer, es *EncState, open, close string) error {
	t := n.Type()
	if err := writeSep(w, es, t, open+" "); err != nil {
		return err
	}
	first := true
	for _, e := range n.Elements() {
		if e.Type() == ir.NoneType {
			continue
		}
		if !first {
			if err := writeSep(w, es, t, ", "); err != nil {
				return err
			}
		}
		first = false
		if err := encodeValue(e, w, es); err != nil {
			return err
		}
	}
	if !first {
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	return writeSep(w, es, t, close)
}

func scalarString(n *ir.Node, es *EncState) (string, ColorAttr) {
	v := n.Value().Any()
	switch x := v.(type) {
	case int32:
		if n.Format().Or(es.format).IsHex() {
			return fmt.Sprintf("0x%X", uint32(x)), HexColor
		}
		return strconv.FormatInt(int64(x), 10), ValueColor
	case int64:
		if n.Format().Or(es.format).IsHex() {
			return fmt.Sprintf("0x%XL", uint64(x)), HexColor
		}
		return strconv.FormatInt(x, 10) + "L", ValueColor
	case float64:
		return FormatFloat(x, es.floatPrec, es.scientific), ValueColor
	case bool:
		return strconv.FormatBool(x), ValueColor
	case string:
		return token.Quote(x), ValueColor
	default:
		return "", ValueColor
	}
}

// FormatFloat formats f so that it reads back as a float: the result
// always holds a '.' or an exponent. prec 0 selects the shortest
// representation that parses back to f.
func FormatFloat(f float64, prec int, scientific bool) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	p := prec
	if p == 0 {
		p = -1
	}
	s := strconv.FormatFloat(f, 'f', p, 64)
	if scientific {
		if e := strconv.FormatFloat(f, 'e', p, 64); len(e) < len(s) {
			s = e
		}
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
