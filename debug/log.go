package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/ir"
)

var out io.Writer = os.Stderr

// Tree formats a setting tree as configuration text with %s.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	if t.Node == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", t.Value())
	}
	return buf.String()
}

// Logf writes a diagnostic line to stderr. *ir.Node arguments are
// rendered as configuration text, maps and slices as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Tree{Node: x}.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
