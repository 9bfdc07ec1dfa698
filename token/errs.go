package token

import "errors"

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrUnicodeControl = errors.New("unicode control")
	ErrNumber         = errors.New("number")
	ErrNumberRange    = errors.New("number out of range")
	ErrUnexpected     = errors.New("unexpected character")
)
