package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/setting-format/go-setting"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/parse"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	arg := args[0]
	var d []byte
	if cfg.String {
		d = []byte(arg)
	} else {
		d, err = os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", ir.ErrIO, err)
		}
	}
	apply, err := patchFunc(d, arg)
	if err != nil {
		return err
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		c, err := cfg.read(cc, file, cc.Out)
		if err != nil {
			return err
		}
		if err := apply(c); err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := output(cc, c, file, cfg.InPlace); err != nil {
			return err
		}
	}
	return nil
}

// patchFunc returns a function applying the patch d to a Config.
func patchFunc(d []byte, name string) (func(*setting.Config) error, error) {
	trimmed := bytes.TrimSpace(d)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		return func(c *setting.Config) error { return c.PatchJSON(d) }, nil
	case bytes.HasPrefix(trimmed, []byte("{")):
		return func(c *setting.Config) error { return c.MergeJSON(d) }, nil
	}
	root, err := parse.Parse(d, parse.WithFilename(name))
	if err != nil {
		return nil, err
	}
	p := root
	if root.Len() == 1 && root.At(0).IsList() {
		p = root.At(0)
	}
	return func(c *setting.Config) error { return c.Patch(p) }, nil
}
