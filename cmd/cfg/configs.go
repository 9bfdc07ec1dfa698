package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/setting-format/go-setting"
	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/eval"
	"github.com/signadot/setting-format/go-setting/format"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	NoColor bool `cli:"name=nocolor desc='never encode with color'"`

	Tabs        int    `cli:"name=tabs desc='indentation width, 0 for tabs'"`
	Colon       bool   `cli:"name=colon desc='assign non-group settings with :'"`
	NoSemi      bool   `cli:"name=nosemi desc='do not terminate settings with ;'"`
	Inline      bool   `cli:"name=inline desc='open group braces on the setting line'"`
	Precision   int    `cli:"name=prec desc='float digits after the point, 0 for shortest'"`
	Scientific  bool   `cli:"name=sci desc='allow exponent notation for floats'"`
	AutoConvert bool   `cli:"name=auto desc='convert numbers between types on access'"`
	Strict      bool   `cli:"name=strict desc='require separators and assignment tokens'"`
	IncludeDir  string `cli:"name=I aliases=include desc='include directory'"`
	Fsync       bool   `cli:"name=fsync desc='sync files written in place'"`

	Format format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) settingOpts() []setting.Option {
	return []setting.Option{
		setting.WithTabWidth(cfg.Tabs),
		setting.WithDefaultFormat(cfg.Format),
		setting.WithColonForNonGroups(cfg.Colon),
		setting.WithSemicolons(!cfg.NoSemi),
		setting.WithBraceOnSeparateLine(!cfg.Inline),
		setting.WithFloatPrecision(cfg.Precision),
		setting.WithScientific(cfg.Scientific),
		setting.WithAutoConvert(cfg.AutoConvert),
		setting.WithStrict(cfg.Strict),
		setting.WithIncludeDir(cfg.IncludeDir),
		setting.WithFsync(cfg.Fsync),
	}
}

// colorize reports whether output to w is colored: always with -color,
// never with -nocolor, otherwise when w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	switch {
	case cfg.Color:
		return true
	case cfg.NoColor:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// forWriter returns the options for writing to w.
func (cfg *MainConfig) forWriter(w io.Writer) []setting.Option {
	res := cfg.settingOpts()
	if cfg.colorize(w) {
		color.NoColor = false
		res = append(res, setting.WithColors(encode.NewColors()))
	}
	return res
}

// read parses file, or standard input if file is "-".
func (cfg *MainConfig) read(cc *cli.Context, file string, w io.Writer) (*setting.Config, error) {
	opts := cfg.forWriter(w)
	if file != "-" {
		return setting.ReadFile(file, opts...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return setting.ReadBytes(d, opts...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Value bool `cli:"name=v desc='print scalars without quotes'"`
	Get   *cli.Command
}

type SetConfig struct {
	*MainConfig

	InPlace bool `cli:"name=w desc='write the result back to the file'"`
	Set     *cli.Command
}

type RmConfig struct {
	*MainConfig

	InPlace bool `cli:"name=w desc='write the result back to the file'"`
	Rm      *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    eval.Env
	Expand bool `cli:"name=x desc='expand $[expr] references in the files instead'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String  bool `cli:"name=s desc='patch arg as string'"`
	InPlace bool `cli:"name=w desc='write the result back to the file'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
