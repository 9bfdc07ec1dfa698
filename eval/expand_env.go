package eval

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/ir"
)

// ExpandEnv replaces `$[expr]` references in every string setting under
// node with the result of evaluating expr at that setting.
func ExpandEnv(node *ir.Node, env Env) error {
	return node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type() != ir.StringType {
			return true, nil
		}
		s, err := n.Str()
		if err != nil {
			return false, err
		}
		v, err := ExpandString(n, s, env)
		if err != nil {
			return false, fmt.Errorf("error expanding %q at %q: %w", s, n.Path(), err)
		}
		if v != s {
			if err := n.SetString(v); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// ExpandString expands the `$[expr]` references in v, evaluated at doc.
// Inside a reference `\]` stands for ']' and `\\` for '\'.
func ExpandString(doc *ir.Node, v string, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	exprStart := -1
	i := 0
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	for i < n {
		c := v[i]
		i++
		switch {
		case exprStart == -1 && c == '$' && i < n && v[i] == '[':
			exprStart = i - 1
			keyBuf = keyBuf[:0]
			i++
		case exprStart == -1:
			outBuf = append(outBuf, c)
		case c == '\\' && i < n:
			keyBuf = append(keyBuf, v[i])
			i++
		case c == ']':
			key := strings.TrimSpace(string(keyBuf))
			x, err := Eval(doc, key, env)
			if err != nil {
				return "", fmt.Errorf("error evaluating %q: %w", key, err)
			}
			if debug.Eval() {
				debug.Logf("expand %q gave %#v\n", key, x)
			}
			anyBytes, err := anyToBytes(x)
			if err != nil {
				return "", fmt.Errorf("could not marshal evaluation results for %s: %w", key, err)
			}
			outBuf = append(outBuf, anyBytes...)
			exprStart = -1
		default:
			keyBuf = append(keyBuf, c)
		}
	}
	if exprStart != -1 {
		return "", fmt.Errorf("unterminated reference %q", v[exprStart:])
	}
	return string(outBuf), nil
}

func anyToBytes(x any) ([]byte, error) {
	switch v := x.(type) {
	case string:
		return []byte(v), nil
	case nil:
		return nil, nil
	default:
		return json.Marshal(v)
	}
}
