package main

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/ir/kpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a setting path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := kpath.Parse(path); err != nil {
		return fmt.Errorf("%w: invalid path %q: %w", cli.ErrUsage, path, err)
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
		n := c.Lookup(path)
		if n == nil {
			// don't encode anything and don't yell either
			continue
		}
		if cfg.Value && n.IsScalar() {
			fmt.Fprintln(cc.Out, n.Value().Any())
			continue
		}
		if err := c.WriteNode(cc.Out, n); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
