package main

import (
	"testing"

	"github.com/signadot/setting-format/go-setting"
	"github.com/signadot/setting-format/go-setting/eval"
)

func TestEnvFunc(t *testing.T) {
	env := eval.Env{}
	for _, a := range []string{"a.b=3", "a.c=\"x\"", "d=plain words"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	a := env["a"].(map[string]any)
	if a["b"] != 3 || a["c"] != "x" {
		t.Errorf("a = %v", a)
	}
	if env["d"] != "plain words" {
		t.Errorf("d = %v", env["d"])
	}
	if err := envFunc(env, "a.b.c=1"); err == nil {
		t.Error("descending into a scalar succeeded")
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("missing '=' accepted")
	}
}

func TestPatchFunc(t *testing.T) {
	for _, p := range []string{
		`[{"op": "replace", "path": "/a", "value": 2}]`,
		`{"a": 2}`,
		`ops = ( { op = "replace"; path = "/a"; value = 2; } );`,
		`a = 2;`,
	} {
		c, err := setting.ReadString(`a = 1; b = true;`)
		if err != nil {
			t.Fatal(err)
		}
		apply, err := patchFunc([]byte(p), "<patch>")
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if err := apply(c); err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if got := c.WriteString(); got != "a = 2;\nb = true;\n" {
			t.Errorf("%s: got %q", p, got)
		}
	}
}

func TestParseValue(t *testing.T) {
	n, err := parseValue("{ x = 0x10; }")
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsGroup() || !n.IsRoot() || n.Lookup("x") == nil {
		t.Errorf("got %v", n.Value())
	}
	if _, err := parseValue("1 2"); err == nil {
		t.Error("two values accepted")
	}
}
