package libdiff

import (
	"strings"

	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Mark returns the one character prefix of lines describing o.
func (o Op) Mark() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is a single difference. From is nil for insertions and To is
// nil for deletions. Path is the path of To, or of From for deletions.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	buf := &strings.Builder{}
	buf.WriteString(c.Op.Mark())
	buf.WriteString(" ")
	buf.WriteString(c.Path)
	buf.WriteString(" = ")
	switch c.Op {
	case Insert:
		buf.WriteString(render(c.To))
	case Delete:
		buf.WriteString(render(c.From))
	default:
		buf.WriteString(render(c.From))
		buf.WriteString(" -> ")
		buf.WriteString(render(c.To))
	}
	return buf.String()
}

func render(n *ir.Node) string {
	return encode.MustString(n, encode.BraceOnSeparateLine(false), encode.SemicolonSeparators(false))
}
