package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	Default Format = iota
	Decimal
	Hex
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"":        Default,
		"default": Default,
		"d":       Decimal,
		"dec":     Decimal,
		"decimal": Decimal,
		"x":       Hex,
		"hex":     Hex,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Default:
		return []byte("default"), nil
	case Decimal:
		return []byte("decimal"), nil
	case Hex:
		return []byte("hex"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsHex() bool { return f == Hex }
func (f Format) IsDecimal() bool { return f == Decimal }

// Or returns f unless it is Default, in which case it returns dflt.
func (f Format) Or(dflt Format) Format {
	if f == Default {
		return dflt
	}
	return f
}

// AllFormats returns the explicit formats in preference order.
func AllFormats() []Format {
	return []Format{Decimal, Hex}
}
