package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/setting-format/go-setting/ir"
)

func TestJSONProjection(t *testing.T) {
	root := mustParse(t, `
z = 1;
a = { big = 9999999999; f = 2.0; list = ( "x", 1, [ true ] ); };
m = [ 1, 2 ];
`)
	d, err := MarshalJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":{"big":9999999999,"f":2.0,"list":["x",1,[true]]},"m":[1,2]}`
	if string(d) != want {
		t.Errorf("got %s", d)
	}
	back, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, back) {
		t.Errorf("projection is lossy:\n%s", d)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	n, err := UnmarshalJSON([]byte(`{"b": [1, 5000000000], "a": [], "c": [{"x": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if n.At(0).Name() != "b" || n.At(1).Name() != "a" {
		t.Errorf("member order lost")
	}
	if et := n.Lookup("b").ElemType(); et != ir.Int64Type {
		t.Errorf("integers should widen, got %s", et)
	}
	if !n.Lookup("c").IsList() {
		t.Errorf("aggregate elements need a list")
	}
	for _, bad := range []string{`{"a": null}`, `[1] 2`, `{"a": 1, "a": 2}`, `{"bad name": 1}`} {
		if _, err := UnmarshalJSON([]byte(bad)); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}
	if _, err := UnmarshalJSON([]byte(`null`)); !errors.Is(err, ErrProjection) {
		t.Errorf("got %v", err)
	}
}

func TestToAny(t *testing.T) {
	root := mustParse(t, "a = 1; b = 2L; c = [ \"x\" ];")
	got := ToAny(root).(map[string]any)
	if got["a"] != 1 || got["b"] != int64(2) {
		t.Errorf("got %#v", got)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrProjection) {
		t.Errorf("got %v", err)
	}
	if _, err := FromAny([]any{1.5, math.Inf(1)}); !errors.Is(err, ErrProjection) {
		t.Errorf("infinite float: got %v", err)
	}
}
