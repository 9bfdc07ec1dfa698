// Package eval evaluates expressions over configuration trees.
//
// Expressions use the github.com/expr-lang/expr language. The members of
// the root group are visible as variables, and three functions are
// available:
//
//	lookup(path)  the value at path from the root, or nil
//	whereami()    the path of the node being evaluated
//	getenv(name)  an environment variable
//
// [ExpandEnv] substitutes `$[expr]` references inside string settings.
//
// Trees are projected to plain Go values with [ToAny] and back with
// [FromAny]; [MarshalJSON] and [UnmarshalJSON] provide the same
// projection as JSON, keeping group member order.
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - IR representation
//   - github.com/signadot/setting-format/go-setting/patch - JSON patches over trees
package eval
