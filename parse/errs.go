package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/token"
)

// Error describes a parse failure. Line and Col are 1-based; Col is 0
// when unknown.
type Error struct {
	File string
	Line int
	Col  int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ir.ErrParse}
	}
	return []error{ir.ErrParse, e.Err}
}

func posErr(file string, pos *token.Pos, format string, args ...any) *Error {
	return &Error{
		File: file,
		Line: pos.Line(),
		Col:  pos.Col(),
		Msg:  fmt.Sprintf(format, args...),
	}
}

func tokenizeErr(file string, err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return &Error{File: file, Line: 1, Msg: err.Error(), Err: err}
	}
	return &Error{
		File: file,
		Line: te.Pos.Line(),
		Col:  te.Pos.Col(),
		Msg:  te.Err.Error(),
		Err:  te.Err,
	}
}
