package main

import (
	"fmt"
	"strings"

	"github.com/signadot/setting-format/go-setting/eval"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		return expandFiles(cfg, cc, args)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	input, files := args[0], args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		c, err := cfg.read(cc, file, cc.Out)
		if err != nil {
			return err
		}
		v, err := c.Eval(input, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		n, err := eval.FromAny(v)
		if err != nil {
			fmt.Fprintf(cc.Out, "%v\n", v)
			continue
		}
		if err := c.WriteNode(cc.Out, n); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func expandFiles(cfg *EvalConfig, cc *cli.Context, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		c, err := cfg.read(cc, file, cc.Out)
		if err != nil {
			return err
		}
		if err := c.Expand(cfg.Env); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := c.Write(cc.Out); err != nil {
			return err
		}
	}
	return nil
}

// envFunc sets the variable at the dotted path key to the value of a
// "key=value" argument. Values are read in configuration syntax and
// fall back to plain strings.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any = val
	if n, err := parseValue(val); err == nil {
		v = eval.ToAny(n)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
