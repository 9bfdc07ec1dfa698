package patch

import (
	"errors"
	"testing"

	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/parse"
)

const doc = `
name = "svc";
port = 8080;
big = 5L;
mask = 0xFF;
ratio = 2.0;
tags = [ "a", "b" ];
limits = [ 1L, 2L ];
`

func parsed(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	root := parsed(t, doc)
	res, err := Apply(root, []byte(`[
		{"op": "replace", "path": "/port", "value": 9090},
		{"op": "add", "path": "/tags/2", "value": "c"},
		{"op": "add", "path": "/limits/2", "value": 3},
		{"op": "remove", "path": "/name"},
		{"op": "add", "path": "/extra", "value": {"x": true}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := `port = 9090;
big = 5L;
mask = 0xFF;
ratio = 2.0;
tags = [ "a", "b", "c" ];
limits = [ 1L, 2L, 3L ];
extra :
{
  x = true;
};`
	if got := encode.MustString(res); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if root.Member("name") == nil {
		t.Error("Apply modified its input")
	}
}

func TestApplyNode(t *testing.T) {
	root := parsed(t, doc)
	p := parsed(t, `ops = ( { op = "replace"; path = "/big"; value = 7; } );`)
	res, err := ApplyNode(root, p.Member("ops"))
	if err != nil {
		t.Fatal(err)
	}
	big := res.Member("big")
	if v, err := big.Int64(); err != nil || v != 7 {
		t.Errorf("big = %v, %v", big.Value(), err)
	}
}

func TestMerge(t *testing.T) {
	root := parsed(t, doc)
	res, err := Merge(root, []byte(`{"port": 1, "name": null, "nested": {"k": "v"}}`))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for name := range res.Members() {
		names = append(names, name)
	}
	want := []string{"port", "big", "mask", "ratio", "tags", "limits", "nested"}
	if len(names) != len(want) {
		t.Fatalf("members %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("members %v, want %v", names, want)
		}
	}
	if got := res.Member("ratio").Type(); got != ir.FloatType {
		t.Errorf("ratio is %s", got)
	}
	if got := res.Member("big").Type(); got != ir.Int64Type {
		t.Errorf("big is %s", got)
	}
	if got := res.Member("mask").Format(); got != format.Hex {
		t.Errorf("mask format %s", got)
	}
	if got := res.Lookup("nested.k"); got == nil || got.Value().Any() != "v" {
		t.Errorf("nested.k = %v", got)
	}
}

func TestMergeNode(t *testing.T) {
	root := parsed(t, doc)
	res, err := MergeNode(root, parsed(t, `tags = [ "z" ];`))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res.Member("tags")); got != `[ "z" ]` {
		t.Errorf("tags = %s", got)
	}
}

func TestPatchErrors(t *testing.T) {
	root := parsed(t, doc)
	for _, p := range []string{
		`not json`,
		`[{"op": "test", "path": "/port", "value": 1}]`,
	} {
		if _, err := Apply(root, []byte(p)); !errors.Is(err, ErrPatch) {
			t.Errorf("Apply(%s): got %v, want ErrPatch", p, err)
		}
	}
	if _, err := Merge(root, []byte(`{`)); !errors.Is(err, ErrPatch) {
		t.Errorf("Merge: got %v", err)
	}
}
