package setting

import (
	"io/fs"

	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/parse"
)

// Options holds the per Config settings for parsing and writing.
type Options struct {
	AutoConvert         bool
	SemicolonSeparators bool
	ColonForGroups      bool
	ColonForNonGroups   bool
	BraceOnSeparateLine bool
	DefaultFormat       format.Format
	TabWidth            int // 0..15, 0 indents with tabs
	IncludeDir          string
	IncludeFS           fs.FS

	// Strict makes the parser require the separators and assignment
	// tokens selected above.
	Strict bool

	FloatPrecision int
	Scientific     bool
	Colors         *encode.Colors

	// Fsync syncs files written by WriteFile before they replace the
	// target.
	Fsync bool
}

func DefaultOptions() Options {
	return Options{
		SemicolonSeparators: true,
		ColonForGroups:      true,
		BraceOnSeparateLine: true,
		DefaultFormat:       format.Decimal,
		TabWidth:            2,
	}
}

type Option func(*Options)

func WithAutoConvert(v bool) Option { return func(o *Options) { o.AutoConvert = v } }
func WithSemicolons(v bool) Option { return func(o *Options) { o.SemicolonSeparators = v } }
func WithColonForGroups(v bool) Option {
	return func(o *Options) { o.ColonForGroups = v }
}
func WithColonForNonGroups(v bool) Option {
	return func(o *Options) { o.ColonForNonGroups = v }
}
func WithBraceOnSeparateLine(v bool) Option {
	return func(o *Options) { o.BraceOnSeparateLine = v }
}
func WithDefaultFormat(f format.Format) Option {
	return func(o *Options) { o.DefaultFormat = f }
}

// WithTabWidth sets the indentation width, clamped to 0..15.
func WithTabWidth(n int) Option {
	return func(o *Options) { o.TabWidth = min(max(n, 0), 15) }
}

func WithIncludeDir(dir string) Option { return func(o *Options) { o.IncludeDir = dir } }
func WithIncludeFS(fsys fs.FS) Option { return func(o *Options) { o.IncludeFS = fsys } }
func WithStrict(v bool) Option { return func(o *Options) { o.Strict = v } }
func WithFloatPrecision(n int) Option { return func(o *Options) { o.FloatPrecision = n } }
func WithScientific(v bool) Option { return func(o *Options) { o.Scientific = v } }
func WithColors(c *encode.Colors) Option {
	return func(o *Options) { o.Colors = c }
}
func WithFsync(v bool) Option { return func(o *Options) { o.Fsync = v } }

func (o *Options) parseOptions(file string) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.AssignTokens(o.ColonForGroups, o.ColonForNonGroups),
		parse.StrictAssign(o.Strict),
		parse.StrictSeparators(o.Strict),
	}
	if file != "" {
		res = append(res, parse.WithFilename(file))
	}
	if o.IncludeDir != "" {
		res = append(res, parse.IncludeDir(o.IncludeDir))
	}
	if o.IncludeFS != nil {
		res = append(res, parse.IncludeFS(o.IncludeFS))
	}
	return res
}

func (o *Options) encodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.TabWidth(o.TabWidth),
		encode.SemicolonSeparators(o.SemicolonSeparators),
		encode.ColonForGroups(o.ColonForGroups),
		encode.ColonForNonGroups(o.ColonForNonGroups),
		encode.BraceOnSeparateLine(o.BraceOnSeparateLine),
		encode.DefaultFormat(o.DefaultFormat),
		encode.FloatPrecision(o.FloatPrecision),
		encode.ScientificNotation(o.Scientific),
		encode.EncodeColors(o.Colors),
	}
}
