package parse

import (
	"errors"
	"strings"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/token"
)

// Parse parses d into a new root group.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{filename: DefaultFilename}
	for _, f := range opts {
		f(pOpts)
	}
	root := ir.NewGroup()
	if err := parseInto(root, d, pOpts.filename, pOpts, 0); err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s:\n%s", pOpts.filename, debug.Tree{Node: root})
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks  []token.Token
	doc   *token.PosDoc
	file  string
	opts  *parseOpts
	depth int
}

// parseInto parses the settings of d as members of g.
func parseInto(g *ir.Node, d []byte, file string, opts *parseOpts, depth int) error {
	toks, doc, err := token.TokenizeDoc(nil, d)
	if err != nil {
		return tokenizeErr(file, err)
	}
	p := &parser{toks: toks, doc: doc, file: file, opts: opts, depth: depth}
	pi := 0
	return p.settings(g, &pi, false)
}

func (p *parser) peek(pi *int) *token.Token {
	if *pi >= len(p.toks) {
		return nil
	}
	return &p.toks[*pi]
}

func (p *parser) endErr(what string) *Error {
	return posErr(p.file, p.doc.End(), "expected %s, got end of input", what)
}

func (p *parser) unexpected(t *token.Token, what string) *Error {
	return posErr(p.file, t.Pos, "expected %s, got %q", what, t.Bytes)
}

// settings parses member settings into g until the end of input or, if
// braced, the closing '}'.
func (p *parser) settings(g *ir.Node, pi *int, braced bool) error {
	for {
		t := p.peek(pi)
		switch {
		case t == nil && braced:
			return p.endErr("'}'")
		case t == nil:
			return nil
		case t.Type == token.TRCurl && braced:
			*pi++
			return nil
		case t.Type == token.TInclude:
			*pi++
			if err := p.include(g, pi, t); err != nil {
				return err
			}
		default:
			if err := p.setting(g, pi); err != nil {
				return err
			}
		}
	}
}

func (p *parser) setting(g *ir.Node, pi *int) error {
	nameTok := p.peek(pi)
	if nameTok.Type != token.TName {
		return p.unexpected(nameTok, "setting name")
	}
	name := string(nameTok.Bytes)
	*pi++
	assign := p.peek(pi)
	if assign == nil {
		return p.endErr("'=' or ':'")
	}
	if assign.Type != token.TEqual && assign.Type != token.TColon {
		return p.unexpected(assign, "'=' or ':'")
	}
	*pi++
	if p.opts.strictAssign {
		if err := p.checkAssign(assign, p.peek(pi)); err != nil {
			return err
		}
	}
	if g.Member(name) != nil {
		return &Error{
			File: p.file,
			Line: nameTok.Pos.Line(),
			Col:  nameTok.Pos.Col(),
			Msg:  "duplicate setting name " + name,
			Err:  ir.ErrDuplicateName,
		}
	}
	child, err := p.value(pi, nameTok)
	if err != nil {
		return err
	}
	if err := g.Attach(name, child); err != nil {
		return posErr(p.file, nameTok.Pos, "%s", err)
	}
	sep := p.peek(pi)
	switch {
	case sep != nil && (sep.Type == token.TSemi || sep.Type == token.TComma):
		*pi++
	case p.opts.strictSep && sep == nil:
		return p.endErr("';' or ','")
	case p.opts.strictSep:
		return p.unexpected(sep, "';' or ','")
	}
	return nil
}

func (p *parser) checkAssign(assign, next *token.Token) error {
	colon := p.opts.colonNonGroups
	kind := "non-group"
	if next != nil && next.Type == token.TLCurl {
		colon = p.opts.colonGroups
		kind = "group"
	}
	want, wantType := "=", token.TEqual
	if colon {
		want, wantType = ":", token.TColon
	}
	if assign.Type != wantType {
		return posErr(p.file, assign.Pos, "%s settings are assigned with %q", kind, want)
	}
	return nil
}

// value parses one value. start is the token the node's source line is
// taken from.
func (p *parser) value(pi *int, start *token.Token) (*ir.Node, error) {
	t := p.peek(pi)
	if t == nil {
		return nil, p.endErr("value")
	}
	var (
		res *ir.Node
		err error
	)
	switch t.Type {
	case token.TLCurl:
		*pi++
		res = ir.NewGroup()
		err = p.settings(res, pi, true)
	case token.TLSquare:
		*pi++
		res, err = p.array(pi)
	case token.TLParen:
		*pi++
		res, err = p.list(pi)
	default:
		if !t.Type.IsScalar() {
			return nil, p.unexpected(t, "value")
		}
		var sv scalarVal
		sv, err = p.scalar(pi)
		if err != nil {
			return nil, err
		}
		res = ir.FromValue(sv.v)
		if sv.hex {
			res.SetFormat(format.Hex)
		}
	}
	if err != nil {
		return nil, err
	}
	res.SetSource(p.file, start.Pos.Line())
	return res, nil
}

type scalarVal struct {
	v   ir.Value
	hex bool
	tok *token.Token
}

func (p *parser) scalar(pi *int) (scalarVal, error) {
	t := p.peek(pi)
	*pi++
	res := scalarVal{tok: t}
	switch t.Type {
	case token.TInteger, token.TInteger64, token.THex, token.THex64:
		i, wide, err := t.Int()
		if err != nil {
			return res, tokenizeErr(p.file, err)
		}
		if wide {
			res.v = ir.Int64(i)
		} else {
			res.v = ir.Int32(int32(i))
		}
		res.hex = t.Type == token.THex || t.Type == token.THex64
	case token.TFloat:
		f, err := t.Float()
		if err != nil {
			return res, tokenizeErr(p.file, err)
		}
		res.v = ir.Float64(f)
	case token.TTrue:
		res.v = ir.Bool(true)
	case token.TFalse:
		res.v = ir.Bool(false)
	case token.TString:
		buf := &strings.Builder{}
		buf.WriteString(t.String())
		for n := p.peek(pi); n != nil && n.Type == token.TString; n = p.peek(pi) {
			buf.WriteString(n.String())
			*pi++
		}
		res.v = ir.String(buf.String())
	default:
		return res, p.unexpected(t, "scalar value")
	}
	return res, nil
}

func (p *parser) array(pi *int) (*ir.Node, error) {
	var elts []scalarVal
	for {
		t := p.peek(pi)
		if t == nil {
			return nil, p.endErr("']'")
		}
		if t.Type == token.TRSquare {
			*pi++
			break
		}
		if len(elts) > 0 {
			if t.Type != token.TComma {
				return nil, p.unexpected(t, "',' or ']'")
			}
			*pi++
			t = p.peek(pi)
			if t == nil {
				return nil, p.endErr("array element")
			}
			if t.Type == token.TRSquare {
				*pi++
				break
			}
		}
		if !t.Type.IsScalar() {
			return nil, posErr(p.file, t.Pos, "array elements must be scalar values, got %q", t.Bytes)
		}
		sv, err := p.scalar(pi)
		if err != nil {
			return nil, err
		}
		elts = append(elts, sv)
	}
	if err := unify(elts); err != nil {
		return nil, p.mismatch(err)
	}
	arr := ir.NewArray()
	for i := range elts {
		sv := &elts[i]
		if err := arr.SetElem(i, sv.v); err != nil {
			return nil, posErr(p.file, sv.tok.Pos, "%s", err)
		}
		e := arr.At(i)
		e.SetSource(p.file, sv.tok.Pos.Line())
		if sv.hex {
			e.SetFormat(format.Hex)
		}
	}
	return arr, nil
}

type mismatchErr struct {
	sv   *scalarVal
	want ir.Type
}

func (e *mismatchErr) Error() string {
	return "array element of type " + e.sv.v.Type().String() + " in array of " + e.want.String()
}

func (p *parser) mismatch(err error) error {
	var me *mismatchErr
	if errors.As(err, &me) {
		return &Error{
			File: p.file,
			Line: me.sv.tok.Pos.Line(),
			Col:  me.sv.tok.Pos.Col(),
			Msg:  me.Error(),
			Err:  ir.ErrTypeMismatch,
		}
	}
	return err
}

// unify gives all elements one type. Int and Int64 elements widen to
// Int64; any other mix is an error.
func unify(elts []scalarVal) error {
	if len(elts) == 0 {
		return nil
	}
	want := elts[0].v.Type()
	for i := range elts {
		t := elts[i].v.Type()
		switch {
		case t == want:
		case t.IsInteger() && want.IsInteger():
			want = ir.Int64Type
		default:
			return &mismatchErr{sv: &elts[i], want: want}
		}
	}
	if want != ir.Int64Type {
		return nil
	}
	for i := range elts {
		if elts[i].v.Type() == ir.IntType {
			v := elts[i].v.Any().(int32)
			elts[i].v = ir.Int64(int64(v))
		}
	}
	return nil
}

func (p *parser) list(pi *int) (*ir.Node, error) {
	lst := ir.NewList()
	for {
		t := p.peek(pi)
		if t == nil {
			return nil, p.endErr("')'")
		}
		if t.Type == token.TRParen {
			*pi++
			return lst, nil
		}
		if lst.Len() > 0 {
			if t.Type != token.TComma {
				return nil, p.unexpected(t, "',' or ')'")
			}
			*pi++
			t = p.peek(pi)
			if t == nil {
				return nil, p.endErr("list element")
			}
			if t.Type == token.TRParen {
				*pi++
				return lst, nil
			}
		}
		child, err := p.value(pi, t)
		if err != nil {
			return nil, err
		}
		if err := lst.Attach("", child); err != nil {
			return nil, posErr(p.file, t.Pos, "%s", err)
		}
	}
}
