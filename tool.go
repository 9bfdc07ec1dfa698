package setting

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/eval"
	"github.com/signadot/setting-format/go-setting/ir"
)

// Tool evaluates expressions against setting trees.
type Tool struct {
	Env eval.Env
}

func DefaultTool() *Tool {
	return &Tool{
		Env: eval.Env{},
	}
}

// Run returns a copy of root with every `$[expr]` reference in its
// string settings replaced by the value of expr.
func (t *Tool) Run(root *ir.Node) (*ir.Node, error) {
	res := root.Clone()
	if err := eval.ExpandEnv(res, t.Env); err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("expanded\n%s", debug.Tree{Node: res})
	}
	return res, nil
}

// Eval evaluates input against root. Settings are visible by name.
func (t *Tool) Eval(root *ir.Node, input string) (any, error) {
	v, err := eval.Eval(root, input, t.Env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", input, err)
	}
	return v, nil
}

// Eval evaluates input against the tree of c.
func (c *Config) Eval(input string, env eval.Env) (any, error) {
	return (&Tool{Env: env}).Eval(c.root, input)
}

// Expand replaces `$[expr]` references in the string settings of c. On
// error c is unchanged.
func (c *Config) Expand(env eval.Env) error {
	res, err := (&Tool{Env: env}).Run(c.root)
	if err != nil {
		return err
	}
	c.root = res
	return nil
}
