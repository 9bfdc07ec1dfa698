package setting

import (
	"errors"
	"fmt"

	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/parse"
)

// Diagnostic is the information needed to report an error on one line.
type Diagnostic struct {
	Kind    string
	File    string
	Line    int // 0 if unknown
	Message string
}

func (d Diagnostic) String() string {
	switch {
	case d.File != "" && d.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Kind, d.Message)
	case d.File != "":
		return fmt.Sprintf("%s: %s: %s", d.File, d.Kind, d.Message)
	default:
		return d.Kind + ": " + d.Message
	}
}

// Diagnose classifies err. Parse errors report ParseError unless an
// include could not be read, which reports IOError. Errors of unknown
// kind get the kind "Error".
func Diagnose(err error) Diagnostic {
	d := Diagnostic{Kind: ir.Kind(err), Message: err.Error()}
	if d.Kind == "" {
		d.Kind = "Error"
	}
	var perr *parse.Error
	if errors.As(err, &perr) {
		d.File = perr.File
		d.Line = perr.Line
		d.Message = perr.Msg
		if errors.Is(perr.Err, ir.ErrIO) {
			d.Kind = ir.Kind(ir.ErrIO)
		}
	}
	return d
}
