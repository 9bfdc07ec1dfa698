package parse

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/token"
)

// include handles `@include "pattern"`, splicing the settings of each
// matching file into g.
func (p *parser) include(g *ir.Node, pi *int, at *token.Token) error {
	t := p.peek(pi)
	if t == nil {
		return p.endErr("include path")
	}
	if t.Type != token.TString {
		return p.unexpected(t, "include path string")
	}
	sv, err := p.scalar(pi)
	if err != nil {
		return err
	}
	pattern, _ := sv.v.Any().(string)
	if p.depth >= MaxIncludeDepth {
		return posErr(p.file, at.Pos, "includes nested deeper than %d", MaxIncludeDepth)
	}
	files, err := p.expand(p.opts.resolve(pattern))
	if err != nil {
		return &Error{
			File: p.file,
			Line: at.Pos.Line(),
			Col:  at.Pos.Col(),
			Msg:  fmt.Sprintf("cannot include %q: %s", pattern, err),
			Err:  fmt.Errorf("%w: %w", ir.ErrIO, err),
		}
	}
	for _, f := range files {
		if debug.Include() {
			debug.Logf("include %s from %s:%d (depth %d)\n", f, p.file, at.Pos.Line(), p.depth+1)
		}
		d, err := p.opts.readFile(f)
		if err != nil {
			return &Error{
				File: p.file,
				Line: at.Pos.Line(),
				Col:  at.Pos.Col(),
				Msg:  fmt.Sprintf("cannot include %q: %s", f, err),
				Err:  fmt.Errorf("%w: %w", ir.ErrIO, err),
			}
		}
		if err := parseInto(g, d, f, p.opts, p.depth+1); err != nil {
			return err
		}
	}
	return nil
}

// expand returns the files named by path. Glob patterns may match no
// file; plain paths are returned as is and fail when read.
func (p *parser) expand(path string) ([]string, error) {
	if !hasMeta(path) {
		return []string{path}, nil
	}
	return p.opts.glob(path)
}
