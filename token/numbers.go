package token

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// number scans the numeric literal at the start of d. d[0] is a sign, a
// digit or '.'.
func number(d []byte) (int, TokenType, error) {
	i := 0
	if d[0] == '-' || d[0] == '+' {
		i++
	}
	if i+1 < len(d) && d[i] == '0' && (d[i+1] == 'x' || d[i+1] == 'X') {
		if i != 0 {
			return i, 0, fmt.Errorf("%w: signed hex literal", ErrNumber)
		}
		n := hexDigits(d[2:])
		if n == 0 {
			return 2, 0, fmt.Errorf("%w: no hex digits", ErrNumber)
		}
		i = 2 + n
		typ := THex
		if l := longSuffix(d[i:]); l != 0 {
			i += l
			typ = THex64
		}
		return terminated(d, i, typ)
	}
	digits := asciiDigits(d[i:])
	i += digits
	f := fract(d[i:])
	if digits == 0 && f < 2 {
		return i, 0, fmt.Errorf("%w: no digits", ErrNumber)
	}
	i += f
	e := exp(d[i:])
	i += e
	if f+e != 0 {
		return terminated(d, i, TFloat)
	}
	typ := TInteger
	if l := longSuffix(d[i:]); l != 0 {
		i += l
		typ = TInteger64
	}
	return terminated(d, i, typ)
}

func terminated(d []byte, i int, typ TokenType) (int, TokenType, error) {
	if i < len(d) && (isNameChar(d[i]) || d[i] == '.') {
		return i, 0, fmt.Errorf("%w: unexpected %q after number", ErrNumber, d[i])
	}
	return i, typ, nil
}

func longSuffix(d []byte) int {
	switch {
	case bytes.HasPrefix(d, []byte("LL")):
		return 2
	case bytes.HasPrefix(d, []byte("L")):
		return 1
	default:
		return 0
	}
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	return asciiDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) && hexDigit(d[i]) {
		i++
	}
	return i
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract returns the length of a '.' followed by zero or more digits.
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

// Int returns the value of an integer token and whether it is 64 bits
// wide. Decimal literals that do not fit in 32 bits are wide. Hex
// literals up to 0xFFFFFFFF are 32 bits in two's complement.
func (t *Token) Int() (int64, bool, error) {
	s := string(t.Bytes)
	switch t.Type {
	case TInteger, TInteger64:
		s = trimLong(s)
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false, NewTokenizeErr(fmt.Errorf("%w: %s", ErrNumberRange, s), t.Pos)
		}
		wide := t.Type == TInteger64 || v < math.MinInt32 || v > math.MaxInt32
		return v, wide, nil
	case THex, THex64:
		s = trimLong(s)
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, false, NewTokenizeErr(fmt.Errorf("%w: %s", ErrNumberRange, s), t.Pos)
		}
		if t.Type == THex && u <= math.MaxUint32 {
			return int64(int32(uint32(u))), false, nil
		}
		return int64(u), true, nil
	default:
		return 0, false, NewTokenizeErr(fmt.Errorf("%w: %s is not an integer", ErrNumber, t.Type), t.Pos)
	}
}

func (t *Token) Float() (float64, error) {
	if t.Type != TFloat {
		return 0, NewTokenizeErr(fmt.Errorf("%w: %s is not a float", ErrNumber, t.Type), t.Pos)
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		return 0, NewTokenizeErr(fmt.Errorf("%w: %s", ErrNumberRange, t.Bytes), t.Pos)
	}
	return f, nil
}

func trimLong(s string) string {
	for len(s) > 0 && s[len(s)-1] == 'L' {
		s = s[:len(s)-1]
	}
	return s
}
