package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *KPath
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "single member",
			input: "a",
			want:  &KPath{Field: stringPtr("a")},
		},
		{
			name:  "nested members",
			input: "a.b.c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next:  &KPath{Field: stringPtr("c")},
				},
			},
		},
		{
			name:  "dotted bracket index",
			input: "a.list.[2]",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("list"),
					Next:  &KPath{Index: intPtr(2)},
				},
			},
		},
		{
			name:  "attached bracket index",
			input: "a.list[2]",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("list"),
					Next:  &KPath{Index: intPtr(2)},
				},
			},
		},
		{
			name:  "bare index",
			input: "a.array.0",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("array"),
					Next:  &KPath{Index: intPtr(0)},
				},
			},
		},
		{
			name:  "leading index",
			input: "[1][0].x",
			want: &KPath{
				Index: intPtr(1),
				Next: &KPath{
					Index: intPtr(0),
					Next:  &KPath{Field: stringPtr("x")},
				},
			},
		},
		{
			name:  "alternate separators",
			input: "a/b:c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next:  &KPath{Field: stringPtr("c")},
				},
			},
		},
		{
			name:  "name characters",
			input: "long-name_2.*star",
			want: &KPath{
				Field: stringPtr("long-name_2"),
				Next:  &KPath{Field: stringPtr("*star")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		".",
		".a",
		"a.",
		"a..b",
		"a[",
		"a[-1]",
		"a[x]",
		"a[0]b",
		"0abc",
		"a b",
		"a.\"b\"",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) = %v, want ErrSyntax", in, err)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a.b", "a.b"},
		{"a.list.[2]", "a.list[2]"},
		{"a.array.0", "a.array[0]"},
		{"[0].b", "[0].b"},
		{"a/b:c", "a.b.c"},
		{"a[1][2].c", "a[1][2].c"},
	}
	for _, tt := range tests {
		got := MustParse(tt.in).String()
		if got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
		if again := MustParse(got).String(); again != got {
			t.Errorf("canonical form %q is not stable: %q", got, again)
		}
	}
}

func TestSplitJoin(t *testing.T) {
	first, rest := Split("a.b.c")
	if first != "a" || rest != "b.c" {
		t.Errorf("Split: got %q %q", first, rest)
	}
	first, rest = Split("[0].b")
	if first != "[0]" || rest != "b" {
		t.Errorf("Split: got %q %q", first, rest)
	}
	parent, last := RSplit("a.b.c")
	if parent != "a.b" || last != "c" {
		t.Errorf("RSplit: got %q %q", parent, last)
	}
	parent, last = RSplit("a[0]")
	if parent != "a" || last != "[0]" {
		t.Errorf("RSplit: got %q %q", parent, last)
	}
	parent, last = RSplit("a")
	if parent != "" || last != "a" {
		t.Errorf("RSplit: got %q %q", parent, last)
	}
	for _, tt := range []struct{ a, b, want string }{
		{"a", "b.c", "a.b.c"},
		{"a", "[0]", "a[0]"},
		{"", "b", "b"},
		{"a", "", "a"},
	} {
		if got := Join(tt.a, tt.b); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAppendParent(t *testing.T) {
	kp := MustParse("a.b")
	full := kp.Append(Index(3))
	if got := full.String(); got != "a.b[3]" {
		t.Errorf("Append: got %q", got)
	}
	if got := kp.String(); got != "a.b" {
		t.Errorf("Append modified receiver: %q", got)
	}
	if got := full.Parent().String(); got != "a.b" {
		t.Errorf("Parent: got %q", got)
	}
	if full.Len() != 3 {
		t.Errorf("Len: got %d", full.Len())
	}
}
