package ir

import (
	"errors"

	"github.com/signadot/setting-format/go-setting/format"
)

var (
	ErrParse            = errors.New("parse error")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrStaleReference   = errors.New("stale reference")
	ErrIO               = errors.New("i/o error")
	ErrBadFormat        = format.ErrBadFormat
)

// Kind returns the name of the first error kind err wraps, or "" if
// err wraps none of them.
func Kind(err error) string {
	for _, k := range []struct {
		err  error
		name string
	}{
		{ErrParse, "ParseError"},
		{ErrTypeMismatch, "TypeMismatch"},
		{ErrInvalidOperation, "InvalidOperation"},
		{ErrDuplicateName, "DuplicateName"},
		{ErrIndexOutOfRange, "IndexOutOfRange"},
		{ErrStaleReference, "StaleReference"},
		{ErrIO, "IOError"},
		{ErrBadFormat, "BadFormat"},
	} {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
