package encode

import "github.com/signadot/setting-format/go-setting/format"

type EncodeOption func(*EncState)

// TabWidth sets the number of spaces per indentation level; 0 indents
// with one tab per level.
func TabWidth(n int) EncodeOption {
	return func(es *EncState) { es.tabWidth = min(max(n, 0), 15) }
}
func SemicolonSeparators(v bool) EncodeOption {
	return func(es *EncState) { es.semicolons = v }
}
func ColonForGroups(v bool) EncodeOption {
	return func(es *EncState) { es.colonGroups = v }
}
func ColonForNonGroups(v bool) EncodeOption {
	return func(es *EncState) { es.colonNonGroups = v }
}
func BraceOnSeparateLine(v bool) EncodeOption {
	return func(es *EncState) { es.braceLine = v }
}

// DefaultFormat sets the format of integers whose node has no format
// hint.
func DefaultFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FloatPrecision sets the number of digits after the decimal point. 0
// writes the shortest representation that parses back to the same value.
func FloatPrecision(n int) EncodeOption {
	return func(es *EncState) { es.floatPrec = max(n, 0) }
}

// ScientificNotation allows exponent notation for floats where it is
// shorter.
func ScientificNotation(v bool) EncodeOption {
	return func(es *EncState) { es.scientific = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
