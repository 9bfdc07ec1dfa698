package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		c, err := cfg.read(cc, file, cc.Out)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(cc.Out)
			}
			fmt.Fprintf(cc.Out, "# %s\n", file)
		}
		if err := c.Write(cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
