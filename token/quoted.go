package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const hexChars = "0123456789ABCDEF"

// Quote returns v as a double quoted string literal. Control characters
// without a short escape and bytes that are not valid UTF-8 are written
// as \xNN.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); {
		r, sz := utf8.DecodeRuneInString(v[i:])
		c := v[i]
		i += sz
		switch {
		case r == utf8.RuneError && sz == 1, c < 0x20, c == 0x7f:
			if short := shortEscape(c); short != "" {
				b.WriteString(short)
				continue
			}
			b.WriteString(`\x`)
			b.WriteByte(hexChars[c>>4])
			b.WriteByte(hexChars[c&0xf])
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		default:
			b.WriteString(v[i-sz : i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

func shortEscape(c byte) string {
	switch c {
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	return ""
}

// Unquote returns the value of the double quoted literal v.
func Unquote(v string) (string, error) {
	n, err := scanQuoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", fmt.Errorf("%w: trailing %q", ErrUnterminated, v[n:])
	}
	b := &strings.Builder{}
	for i := 1; i < n-1; i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		switch v[i] {
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'x':
			b.WriteByte(unhex(v[i+1])<<4 | unhex(v[i+2]))
			i += 2
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String(), nil
}

// scanQuoted returns the length of the double quoted literal at the
// start of d, including both quotes.
func scanQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, fmt.Errorf("%w: missing quote", ErrUnterminated)
	}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, ErrBadUTF8
		}
		switch {
		case r == '"':
			return i + 1, nil
		case r == '\\':
			if i+1 >= len(d) {
				return i, ErrUnterminated
			}
			switch d[i+1] {
			case '\\', '"', 'f', 'n', 'r', 't':
				i += 2
			case 'x':
				if i+3 >= len(d) || !hexDigit(d[i+2]) || !hexDigit(d[i+3]) {
					return i, fmt.Errorf("%w: \\x needs two hex digits", ErrBadEscape)
				}
				i += 4
			default:
				return i, fmt.Errorf("%w: \\%c", ErrBadEscape, d[i+1])
			}
			continue
		case r < 0x20 && r != '\n' && r != '\t' && r != '\r':
			return i, ErrUnicodeControl
		}
		i += sz
	}
	return i, ErrUnterminated
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
