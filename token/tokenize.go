package token

import (
	"bytes"
	"fmt"
	"strings"
)

type tokenOpts struct {
	comments bool
}

type TokenOpt func(*tokenOpts)

// TokenizeComments keeps comments as TComment tokens. By default they
// are dropped.
func TokenizeComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

var punct = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'(': TLParen,
	')': TRParen,
	'[': TLSquare,
	']': TRSquare,
	';': TSemi,
	',': TComma,
	'=': TEqual,
	':': TColon,
}

const includeDirective = "@include"

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	res, _, err := TokenizeDoc(dst, src, opts...)
	return res, err
}

// TokenizeDoc is like Tokenize and also returns the position document
// of src.
func TokenizeDoc(dst []Token, src []byte, opts ...TokenOpt) ([]Token, *PosDoc, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	posDoc := NewPosDoc(src)
	d := src
	n := len(d)
	i := 0
	emit := func(t TokenType, start, end int) {
		dst = append(dst, Token{Type: t, Pos: posDoc.Pos(start), Bytes: d[start:end]})
	}
	for i < n {
		c := d[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++
			continue
		case ' ', '\t', '\r', '\f':
			i++
			continue
		case '#':
			end := lineEnd(d, i)
			if opt.comments {
				emit(TComment, i, end)
			}
			i = end
			continue
		case '/':
			if i+1 < n && d[i+1] == '/' {
				end := lineEnd(d, i)
				if opt.comments {
					emit(TComment, i, end)
				}
				i = end
				continue
			}
			if i+1 < n && d[i+1] == '*' {
				j := bytes.Index(d[i+2:], []byte("*/"))
				if j < 0 {
					return nil, posDoc, NewTokenizeErr(fmt.Errorf("%w comment", ErrUnterminated), posDoc.Pos(i))
				}
				end := i + 2 + j + 2
				markNewlines(posDoc, d, i, end)
				if opt.comments {
					emit(TComment, i, end)
				}
				i = end
				continue
			}
			return nil, posDoc, UnexpectedErr("'/'", posDoc.Pos(i))
		case '"':
			sz, err := scanQuoted(d[i:])
			if err != nil {
				return nil, posDoc, NewTokenizeErr(err, posDoc.Pos(i+sz))
			}
			markNewlines(posDoc, d, i, i+sz)
			emit(TString, i, i+sz)
			i += sz
			continue
		case '@':
			end := i + len(includeDirective)
			if !bytes.HasPrefix(d[i:], []byte(includeDirective)) || end < n && isNameChar(d[end]) {
				return nil, posDoc, UnexpectedErr("directive", posDoc.Pos(i))
			}
			emit(TInclude, i, end)
			i = end
			continue
		}
		if t, ok := punct[c]; ok {
			emit(t, i, i+1)
			i++
			continue
		}
		switch {
		case asciiDigit(c), c == '-', c == '+', c == '.':
			sz, typ, err := number(d[i:])
			if err != nil {
				return nil, posDoc, NewTokenizeErr(err, posDoc.Pos(i+sz))
			}
			emit(typ, i, i+sz)
			i += sz
		case isNameStart(c):
			j := i + 1
			for j < n && isNameChar(d[j]) {
				j++
			}
			typ := TName
			switch strings.ToLower(string(d[i:j])) {
			case "true":
				typ = TTrue
			case "false":
				typ = TFalse
			}
			emit(typ, i, j)
			i = j
		default:
			return nil, posDoc, UnexpectedErr(fmt.Sprintf("%q", c), posDoc.Pos(i))
		}
	}
	return dst, posDoc, nil
}

// End returns the position just past the end of the document.
func (p *PosDoc) End() *Pos {
	return p.end()
}

func lineEnd(d []byte, i int) int {
	j := bytes.IndexByte(d[i:], '\n')
	if j < 0 {
		return len(d)
	}
	return i + j
}

func markNewlines(p *PosDoc, d []byte, start, end int) {
	for k := start; k < end; k++ {
		if d[k] == '\n' {
			p.nl(k)
		}
	}
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '*'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || asciiDigit(c) || c == '-' || c == '_'
}
