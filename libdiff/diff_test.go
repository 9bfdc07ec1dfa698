package libdiff

import (
	"strings"
	"testing"

	"github.com/signadot/setting-format/go-setting/parse"
)

type diffTest struct {
	a    string
	b    string
	diff string
}

var diffTests = []diffTest{
	{
		a: `a = 1; b = 2; c = 3;`,
		b: `a = 1; c = 4; d = 5;`,
		diff: `
- b = 2
~ c = 3 -> 4
+ d = 5`,
	},
	{
		a:    `port = 1;`,
		b:    `port = "1";`,
		diff: `~ port = 1 -> "1"`,
	},
	{
		a:    `g : { a = 1; };`,
		b:    `g : { a = 1; b = 2; };`,
		diff: `+ g.b = 2`,
	},
	{
		a:    `arr = [ 1, 2, 3 ];`,
		b:    `arr = [ 1, 5, 3 ];`,
		diff: `~ arr[1] = 2 -> 5`,
	},
	{
		a:    `arr = [ 1, 2, 3 ];`,
		b:    `arr = [ 1, 2, 3, 4 ];`,
		diff: `+ arr[3] = 4`,
	},
	{
		a:    `arr = [ 1, 2, 3 ];`,
		b:    `arr = [ 2, 3 ];`,
		diff: `- arr[0] = 1`,
	},
	{
		a: `arr = [ 1, 2, 3, 9 ];`,
		b: `arr = [ 1, 7, 9 ];`,
		diff: `
~ arr[1] = 2 -> 7
- arr[2] = 3`,
	},
	{
		a:    `l = ( { x = 1; }, "s" );`,
		b:    `l = ( { x = 2; }, "s" );`,
		diff: `~ l[0].x = 1 -> 2`,
	},
	{
		a: `m = 0xFF; s = "x";`,
		b: `m = 255;
s = "x";`,
	},
}

func TestDiff(t *testing.T) {
	for i, tt := range diffTests {
		a, err := parse.ParseString(tt.a)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		b, err := parse.ParseString(tt.b)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		lines := []string{}
		for _, c := range Diff(a, b) {
			lines = append(lines, c.String())
		}
		got := strings.Join(lines, "\n")
		if want := strings.TrimSpace(tt.diff); got != want {
			t.Errorf("%d: got\n%s\nwant\n%s", i, got, want)
		}
	}
}

func TestDiffOps(t *testing.T) {
	a, _ := parse.ParseString(`x = 1;`)
	b, _ := parse.ParseString(`y = 1;`)
	changes := Diff(a, b)
	if len(changes) != 2 {
		t.Fatalf("got %d changes", len(changes))
	}
	if c := changes[0]; c.Op != Delete || c.To != nil || c.From.Name() != "x" {
		t.Errorf("first change %+v", c)
	}
	if c := changes[1]; c.Op != Insert || c.From != nil || c.To.Name() != "y" {
		t.Errorf("second change %+v", c)
	}
	if Diff(a, a) != nil {
		t.Error("equal trees have changes")
	}
}
