package token

import "fmt"

type TokenType int

const (
	TName TokenType = iota
	TInteger
	TInteger64
	THex
	THex64
	TFloat
	TTrue
	TFalse
	TString
	TInclude
	TComment
	TLCurl
	TRCurl
	TLParen
	TRParen
	TLSquare
	TRSquare
	TSemi
	TComma
	TEqual
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TName:      "TName",
		TInteger:   "TInteger",
		TInteger64: "TInteger64",
		THex:       "THex",
		THex64:     "THex64",
		TFloat:     "TFloat",
		TTrue:      "TTrue",
		TFalse:     "TFalse",
		TString:    "TString",
		TInclude:   "TInclude",
		TComment:   "TComment",
		TLCurl:     "TLCurl",
		TRCurl:     "TRCurl",
		TLParen:    "TLParen",
		TRParen:    "TRParen",
		TLSquare:   "TLSquare",
		TRSquare:   "TRSquare",
		TSemi:      "TSemi",
		TComma:     "TComma",
		TEqual:     "TEqual",
		TColon:     "TColon",
	}[t]
}

// IsScalar reports whether tokens of type t denote a scalar value.
func (t TokenType) IsScalar() bool {
	switch t {
	case TInteger, TInteger64, THex, THex64, TFloat, TTrue, TFalse, TString:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text of the token. Quoted strings are unquoted.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
