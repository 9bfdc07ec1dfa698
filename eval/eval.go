package eval

import (
	"fmt"
	"maps"
	"os"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/ir"

	"github.com/expr-lang/expr"
)

// Env holds variables visible to expressions, in addition to the
// members of the root group.
type Env map[string]any

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return doc.Path(), nil
		},
			new(func() string)),
		expr.Function("lookup", func(params ...any) (any, error) {
			path := params[0].(string)
			res := doc.Root().Lookup(path)
			if res == nil {
				return nil, nil
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func envFor(doc *ir.Node, env Env) map[string]any {
	res := map[string]any{}
	if root := doc.Root(); root.IsGroup() {
		res = ToAny(root).(map[string]any)
	}
	maps.Copy(res, env)
	return res
}

// Eval evaluates input at doc.
func Eval(doc *ir.Node, input string, env Env) (any, error) {
	program, err := expr.Compile(input, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(program, envFor(doc, env))
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q at %q gave %#v\n", input, doc.Path(), res)
	}
	return res, nil
}

// EvalNode is like Eval and returns the result as a detached tree.
func EvalNode(doc *ir.Node, input string, env Env) (*ir.Node, error) {
	res, err := Eval(doc, input, env)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: %q evaluated to nil", ErrProjection, input)
	}
	return FromAny(res)
}
