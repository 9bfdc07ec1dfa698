package main

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a path, a value and a file, got %v", cli.ErrUsage, args)
	}
	path, val, file := args[0], args[1], args[2]
	v, err := parseValue(val)
	if err != nil {
		return err
	}
	c, err := cfg.read(cc, file, cc.Out)
	if err != nil {
		return err
	}
	if err := c.Set(path, v); err != nil {
		return err
	}
	return output(cc, c, file, cfg.InPlace)
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm requires a path and a file, got %v", cli.ErrUsage, args)
	}
	path, file := args[0], args[1]
	c, err := cfg.read(cc, file, cc.Out)
	if err != nil {
		return err
	}
	if err := c.Remove(path); err != nil {
		return err
	}
	return output(cc, c, file, cfg.InPlace)
}

// parseValue parses a value written in configuration syntax, such as
// 12L, "text" or { a = 1; }.
func parseValue(val string) (*ir.Node, error) {
	root, err := parse.ParseString("v = "+val+";", parse.WithFilename("<value>"))
	if err != nil {
		return nil, err
	}
	return root.Member("v").Clone(), nil
}

// output writes c back to file if inPlace is set and file is not
// standard input, otherwise to the command output.
func output(cc *cli.Context, c *setting.Config, file string, inPlace bool) error {
	if !inPlace || file == "-" {
		return c.Write(cc.Out)
	}
	c.SetOptions(setting.WithColors(nil))
	if err := c.WriteFile(file); err != nil {
		return err
	}
	theLog.Info("wrote", "file", file)
	return nil
}
