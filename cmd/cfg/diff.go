package main

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.read(cc, args[0], cc.Out)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := cfg.read(cc, args[1], cc.Out)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	from, to := a.Root(), b.Root()
	if cfg.Reverse {
		from, to = to, from
	}
	changes := libdiff.Diff(from, to)
	if len(changes) == 0 {
		return nil
	}
	colorize := cfg.colorize(cc.Out)
	for _, c := range changes {
		line := c.String()
		if colorize {
			line = opColor(c.Op).Sprint(line)
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func opColor(op libdiff.Op) *color.Color {
	var c *color.Color
	switch op {
	case libdiff.Insert:
		c = color.New(color.FgGreen)
	case libdiff.Delete:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgYellow)
	}
	c.EnableColor()
	return c
}
