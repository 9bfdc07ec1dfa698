package parse

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
)

func mustParse(t *testing.T, in string, opts ...ParseOption) *ir.Node {
	t.Helper()
	root, err := ParseString(in, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return root
}

func TestParseScalars(t *testing.T) {
	root := mustParse(t, `section1 : {
  integer_value = -12;
  boolean_value = false;
  long_integer_value = 99991L;
  float_value = 0.99991;
  string_value = "test string";
};`)
	tests := []struct {
		path string
		want any
	}{
		{"section1.integer_value", int32(-12)},
		{"section1.boolean_value", false},
		{"section1.long_integer_value", int64(99991)},
		{"section1.float_value", 0.99991},
		{"section1.string_value", "test string"},
	}
	for _, tt := range tests {
		n := root.Lookup(tt.path)
		if n == nil {
			t.Errorf("%s not found", tt.path)
			continue
		}
		if got := n.Value().Any(); got != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.path, got, tt.want)
		}
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
		typ  ir.Type
		want any
	}{
		{"int overflow promotes", "v = 3000000000;", ir.Int64Type, int64(3000000000)},
		{"negative int64 limit", "v = -2147483649;", ir.Int64Type, int64(-2147483649)},
		{"hex", "v = 0xFF;", ir.IntType, int32(255)},
		{"hex twos complement", "v = 0xFFFFFFFF;", ir.IntType, int32(-1)},
		{"wide hex", "v = 0x1FFFFFFFF;", ir.Int64Type, int64(0x1FFFFFFFF)},
		{"hex long", "v = 0x10L;", ir.Int64Type, int64(16)},
		{"float exponent", "v = -2.5e-3;", ir.FloatType, -0.0025},
		{"float leading dot", "v = .5;", ir.FloatType, 0.5},
		{"bool case", "v = TRUE;", ir.BoolType, true},
		{"string concat", `v = "a" "b"
  "c";`, ir.StringType, "abc"},
		{"string escapes", `v = "q\"\\\t\x41";`, ir.StringType, "q\"\\\tA"},
		{"colon scalar", "v : 1", ir.IntType, int32(1)},
		{"comma separator", "v = 1,", ir.IntType, int32(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustParse(t, tt.in).Lookup("v")
			if n.Type() != tt.typ {
				t.Fatalf("type %s, want %s", n.Type(), tt.typ)
			}
			if got := n.Value().Any(); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseHexFormat(t *testing.T) {
	root := mustParse(t, "a = 0x10; b = 16; c = [0x1, 2];")
	if root.Lookup("a").Format() != format.Hex {
		t.Errorf("hex literal lost its format")
	}
	if root.Lookup("b").Format() != format.Default {
		t.Errorf("decimal literal has format %s", root.Lookup("b").Format())
	}
	if root.Lookup("c.[0]").Format() != format.Hex || root.Lookup("c.[1]").Format() != format.Default {
		t.Errorf("array element formats wrong")
	}
}

func TestParseAggregates(t *testing.T) {
	root := mustParse(t, `
# comment
application:
{
  window = { title = "My Application"; size = { w = 640; h = 480; }; };
  list = ( ( "abc", 123, true ), 1.234, ( /* empty */ ), { x = 1; } );
  books = ( { title = "Treasure Island"; price = 29.99; } );
  misc = { pi = 3.141592654; bigint = 9223372036854775807L;
           columns = [ "Last Name", "First Name", "MI" ];
           bitmask = 0x1FC3; empty = []; };
};
// trailing
`)
	if root.Len() != 1 {
		t.Fatalf("root has %d members", root.Len())
	}
	checks := []struct {
		path string
		typ  ir.Type
		len  int
	}{
		{"application", ir.GroupType, 4},
		{"application.window.size", ir.GroupType, 2},
		{"application.list", ir.ListType, 4},
		{"application.list.[0]", ir.ListType, 3},
		{"application.list.[2]", ir.ListType, 0},
		{"application.list.[3]", ir.GroupType, 1},
		{"application.misc.columns", ir.ArrayType, 3},
		{"application.misc.empty", ir.ArrayType, 0},
		{"application.books.[0]", ir.GroupType, 2},
	}
	for _, c := range checks {
		n := root.Lookup(c.path)
		if n == nil {
			t.Errorf("%s not found", c.path)
			continue
		}
		if n.Type() != c.typ || n.Len() != c.len {
			t.Errorf("%s: %s len %d, want %s len %d", c.path, n.Type(), n.Len(), c.typ, c.len)
		}
	}
	v, err := root.Lookup("application.misc.bigint").Int64()
	if err != nil || v != math.MaxInt64 {
		t.Errorf("bigint: %d %v", v, err)
	}
	s, _ := root.Lookup("application.list.[0].[0]").Str()
	if s != "abc" {
		t.Errorf("got %q", s)
	}
	var names []string
	for name := range root.Lookup("application").Members() {
		names = append(names, name)
	}
	if diff := cmp.Diff([]string{"window", "list", "books", "misc"}, names); diff != "" {
		t.Errorf("member order (-want +got):\n%s", diff)
	}
}

func TestParseArrayUnify(t *testing.T) {
	root := mustParse(t, "a = [1, 2L, 3];")
	arr := root.Lookup("a")
	if arr.ElemType() != ir.Int64Type {
		t.Fatalf("elem type %s", arr.ElemType())
	}
	var got []int64
	for _, e := range arr.Elements() {
		v, err := e.Int64()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseLines(t *testing.T) {
	root := mustParse(t, "a = 1;\n\ng = {\n  b = \"x\";\n  c = [\n    1,\n    2 ];\n};", WithFilename("test.cfg"))
	for path, want := range map[string]int{
		"a":       1,
		"g":       3,
		"g.b":     4,
		"g.c":     5,
		"g.c.[0]": 6,
		"g.c.[1]": 7,
	} {
		n := root.Lookup(path)
		line, ok := n.SourceLine()
		if !ok || line != want {
			t.Errorf("%s: line %d (%t), want %d", path, line, ok, want)
		}
		if f, _ := n.SourceFile(); f != "test.cfg" {
			t.Errorf("%s: file %q", path, f)
		}
	}
	if _, ok := root.SourceLine(); ok {
		t.Errorf("root has a source line")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		kind error
	}{
		{"missing value", "a = ;", 1, nil},
		{"missing assign", "a 1;", 1, nil},
		{"unterminated group", "g = {\n a = 1;\n", 3, nil},
		{"unterminated array", "a = [1, 2", 1, nil},
		{"unterminated list", "a = (1,", 1, nil},
		{"mixed array", "a = [1,\n 2.5];", 2, ir.ErrTypeMismatch},
		{"aggregate in array", "a = [ {} ];", 1, nil},
		{"duplicate", "a = 1;\na = 2;", 2, ir.ErrDuplicateName},
		{"duplicate in group", "g = { x = 1; x = \"s\"; };", 1, ir.ErrDuplicateName},
		{"bad token", "a = 1;\nb = $;", 2, nil},
		{"bad string", "a = \"open;", 1, nil},
		{"missing comma", "a = [1 2];", 1, nil},
		{"stray close", "}", 1, nil},
		{"number range", "a = 99999999999999999999;", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseString(tt.in)
			if root != nil {
				t.Errorf("partial result returned")
			}
			if !errors.Is(err, ir.ErrParse) {
				t.Fatalf("got %v, want ErrParse", err)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("%T is not *Error", err)
			}
			if pe.Line != tt.line || pe.File != DefaultFilename {
				t.Errorf("error at %s:%d, want line %d: %v", pe.File, pe.Line, tt.line, err)
			}
			if tt.kind != nil && !errors.Is(err, tt.kind) {
				t.Errorf("error %v is not %v", err, tt.kind)
			}
		})
	}
}

func TestStrictOptions(t *testing.T) {
	if _, err := ParseString("a = 1\nb = 2;", StrictSeparators(true)); !errors.Is(err, ir.ErrParse) {
		t.Errorf("missing separator accepted: %v", err)
	}
	mustParse(t, "a = 1;\nb = 2,", StrictSeparators(true))

	strict := []ParseOption{StrictAssign(true), AssignTokens(true, false)}
	mustParse(t, "g : { a = 1; };", strict...)
	if _, err := ParseString("g = { a = 1; };", strict...); !errors.Is(err, ir.ErrParse) {
		t.Errorf("'=' for group accepted: %v", err)
	}
	if _, err := ParseString("a : 1;", strict...); !errors.Is(err, ir.ErrParse) {
		t.Errorf("':' for scalar accepted: %v", err)
	}
	mustParse(t, "g = { a : 1; };")
}

func TestInclude(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/main.cfg":         {Data: []byte("top = 1;\n@include \"sub/one.cfg\"\ng = { @include \"sub/two.cfg\" };\n")},
		"conf/sub/one.cfg":      {Data: []byte("\none = \"x\";")},
		"conf/sub/two.cfg":      {Data: []byte("two = 2;")},
		"conf/glob/b.cfg":       {Data: []byte("b = 2;")},
		"conf/glob/a.cfg":       {Data: []byte("a = 1;")},
		"conf/self.cfg":         {Data: []byte("@include \"self.cfg\"")},
		"conf/bad.cfg":          {Data: []byte("x = ;")},
		"conf/includes-bad.cfg": {Data: []byte("\n@include \"bad.cfg\"")},
	}
	opts := []ParseOption{IncludeFS(fsys), IncludeDir("conf")}

	main, err := fsys.ReadFile("conf/main.cfg")
	if err != nil {
		t.Fatal(err)
	}
	root, err := Parse(main, append(opts, WithFilename("main.cfg"))...)
	if err != nil {
		t.Fatal(err)
	}
	one := root.Lookup("one")
	if s, _ := one.Str(); s != "x" {
		t.Fatalf("one = %q", s)
	}
	if f, _ := one.SourceFile(); f != "conf/sub/one.cfg" {
		t.Errorf("included file label %q", f)
	}
	if l, _ := one.SourceLine(); l != 2 {
		t.Errorf("included line %d", l)
	}
	if v, _ := root.Lookup("g.two").Int32(); v != 2 {
		t.Errorf("include inside group failed")
	}

	root = mustParse(t, `@include "glob/*.cfg"`, opts...)
	var names []string
	for name := range root.Members() {
		names = append(names, name)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("glob order (-want +got):\n%s", diff)
	}
	mustParse(t, `@include "nothing/*.cfg"`, opts...)

	_, err = ParseString(`@include "self.cfg"`, opts...)
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("recursive include: %v", err)
	}
	_, err = ParseString(`@include "missing.cfg"`, opts...)
	if !errors.Is(err, ir.ErrIO) || !errors.Is(err, ir.ErrParse) {
		t.Errorf("missing include: %v", err)
	}
	_, err = ParseString(`@include "includes-bad.cfg"`, opts...)
	var pe *Error
	if !errors.As(err, &pe) || pe.File != "conf/bad.cfg" || pe.Line != 1 {
		t.Errorf("error in included file: %v", err)
	}
	_, err = ParseString("@include 12")
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("non-string include: %v", err)
	}
}
