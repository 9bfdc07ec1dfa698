package setting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/stretchr/testify/require"
)

func TestScenarioA(t *testing.T) {
	c, err := ReadString(`section1 : { integer_value = -12; boolean_value = false; long_integer_value = 99991L; float_value = 0.99991; string_value = "test string"; };`)
	require.NoError(t, err)

	n := c.Lookup("section1.integer_value")
	require.NotNil(t, n)
	require.Equal(t, ir.IntType, n.Type())
	i, ok := c.LookupInt32("section1.integer_value")
	require.True(t, ok)
	require.Equal(t, int32(-12), i)

	require.Equal(t, ir.Int64Type, c.Lookup("section1.long_integer_value").Type())
	l, ok := c.LookupInt64("section1.long_integer_value")
	require.True(t, ok)
	require.Equal(t, int64(99991), l)

	f, ok := c.LookupFloat64("section1.float_value")
	require.True(t, ok)
	require.Equal(t, 0.99991, f)
	b, ok := c.LookupBool("section1.boolean_value")
	require.True(t, ok)
	require.False(t, b)
	s, ok := c.LookupString("section1.string_value")
	require.True(t, ok)
	require.Equal(t, "test string", s)

	_, ok = c.LookupInt32("section1.nope")
	require.False(t, ok)
	_, ok = c.LookupInt32("section1.string_value")
	require.False(t, ok)
}

func TestScenarioB(t *testing.T) {
	c := New()
	root, err := c.Root().Add("root", ir.GroupType)
	require.NoError(t, err)
	g, err := root.Add("group", ir.GroupType)
	require.NoError(t, err)
	add := func(name string, ty ir.Type) *ir.Node {
		n, err := g.Add(name, ty)
		require.NoError(t, err)
		return n
	}
	require.NoError(t, add("test", ir.IntType).SetInt32(123))
	require.NoError(t, add("test2", ir.Int64Type).SetInt64(100000002))
	require.NoError(t, add("test3", ir.FloatType).SetFloat64(1.00023))
	require.NoError(t, add("test4", ir.BoolType).SetBool(true))
	require.NoError(t, add("test5", ir.StringType).SetString("string string"))

	path := filepath.Join(t.TempDir(), "out.cfg")
	require.NoError(t, c.WriteFile(path))
	back, err := ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, ir.IntType, back.Lookup("root.group.test").Type())
	v, ok := back.LookupInt32("root.group.test")
	require.True(t, ok)
	require.Equal(t, int32(123), v)
	l, ok := back.LookupInt64("root.group.test2")
	require.True(t, ok)
	require.Equal(t, int64(100000002), l)
	f, ok := back.LookupFloat64("root.group.test3")
	require.True(t, ok)
	require.Equal(t, 1.00023, f)
	b, ok := back.LookupBool("root.group.test4")
	require.True(t, ok)
	require.True(t, b)
	s, ok := back.LookupString("root.group.test5")
	require.True(t, ok)
	require.Equal(t, "string string", s)
	require.True(t, ir.Equal(c.Root(), back.Root()))
}

func TestScenarioC(t *testing.T) {
	c := New()
	root, err := c.Root().Add("root", ir.GroupType)
	require.NoError(t, err)
	g, err := root.Add("group", ir.GroupType)
	require.NoError(t, err)
	arr, err := g.Add("array", ir.ArrayType)
	require.NoError(t, err)
	for i, v := range []int32{123, 321, 411} {
		require.NoError(t, arr.SetElem(i, ir.Int32(v)))
	}
	lst, err := g.Add("list", ir.ListType)
	require.NoError(t, err)
	for i, v := range []string{"value1", "value2", "value3"} {
		require.NoError(t, lst.SetElem(i, ir.String(v)))
	}

	var got []int32
	for _, e := range c.Lookup("root.group.array").Elements() {
		v, err := e.Int32()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int32{123, 321, 411}, got)
	var strs []string
	for _, e := range c.Lookup("root.group.list").Elements() {
		v, err := e.Str()
		require.NoError(t, err)
		strs = append(strs, v)
	}
	require.Equal(t, []string{"value1", "value2", "value3"}, strs)
	v, ok := c.LookupInt32("root.group.array.[1]")
	require.True(t, ok)
	require.Equal(t, int32(321), v)

	require.ErrorIs(t, arr.SetElem(3, ir.Float64(1.5)), ir.ErrTypeMismatch)
	require.Equal(t, 3, arr.Len())
}

func TestScenarioD(t *testing.T) {
	c := New()
	root, err := c.Root().Add("root", ir.GroupType)
	require.NoError(t, err)
	g, err := root.Add("group", ir.GroupType)
	require.NoError(t, err)
	sv, err := g.Add("some_value", ir.IntType)
	require.NoError(t, err)
	require.NoError(t, sv.SetInt32(11))
	av, err := g.Add("another_value", ir.IntType)
	require.NoError(t, err)
	require.NoError(t, av.SetInt32(-123))

	held := c.Lookup("root.group.some_value")
	require.NotNil(t, held)
	require.NoError(t, c.Remove("root.group.some_value"))
	require.Nil(t, c.Lookup("root.group.some_value"))
	_, err = held.Int32()
	require.ErrorIs(t, err, ir.ErrStaleReference)
	v, ok := c.LookupInt32("root.group.another_value")
	require.True(t, ok)
	require.Equal(t, int32(-123), v)

	require.NoError(t, c.Remove("root.group"))
	require.Nil(t, c.Lookup("root.group"))
	require.Nil(t, c.Lookup("root.group.another_value"))
	require.True(t, g.IsRemoved())
	require.NotNil(t, c.Lookup("root"))

	require.ErrorIs(t, c.Remove("root.group"), ir.ErrInvalidOperation)
}

func TestReadFailureKeepsTree(t *testing.T) {
	c, err := ReadString(`a = 1;`)
	require.NoError(t, err)
	err = c.ReadString("b = 2;\na = ;")
	require.ErrorIs(t, err, ir.ErrParse)
	v, ok := c.LookupInt32("a")
	require.True(t, ok)
	require.Equal(t, int32(1), v)
	require.Nil(t, c.Lookup("b"))

	d := Diagnose(err)
	require.Equal(t, "ParseError", d.Kind)
	require.Equal(t, "<string>", d.File)
	require.Equal(t, 2, d.Line)
	require.True(t, strings.HasPrefix(d.String(), "<string>:2: ParseError: "), d.String())

	_, err = ReadString(`a = 1; a = 2;`)
	require.ErrorIs(t, err, ir.ErrDuplicateName)
}

func TestDiagnose(t *testing.T) {
	c, err := ReadString(`a = 1;`)
	require.NoError(t, err)
	err = c.Lookup("a").SetString("x")
	d := Diagnose(err)
	require.Equal(t, "TypeMismatch", d.Kind)
	require.Empty(t, d.File)
	require.Equal(t, 0, d.Line)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.cfg"))
	require.ErrorIs(t, err, ir.ErrIO)
	require.Equal(t, "IOError", Diagnose(err).Kind)

	_, err = ReadString(`@include "nope.cfg"`, WithIncludeDir(t.TempDir()))
	require.ErrorIs(t, err, ir.ErrParse)
	require.Equal(t, "IOError", Diagnose(err).Kind)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inc.cfg"), []byte("b = 2;\n"), 0o644))
	main := filepath.Join(dir, "main.cfg")
	require.NoError(t, os.WriteFile(main, []byte("a = 1;\n@include \"inc.cfg\"\nc = [ 0x10 ];\n"), 0o644))

	c, err := ReadFile(main, WithFsync(true))
	require.NoError(t, err)
	v, ok := c.LookupInt32("b")
	require.True(t, ok)
	require.Equal(t, int32(2), v)
	file, ok := c.Lookup("b").SourceFile()
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "inc.cfg"), file)
	line, ok := c.Lookup("c").SourceLine()
	require.True(t, ok)
	require.Equal(t, 3, line)

	out := filepath.Join(dir, "out.cfg")
	require.NoError(t, c.WriteFile(out))
	d, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "a = 1;\nb = 2;\nc = [ 0x10 ];\n", string(d))

	back, err := ReadFile(out)
	require.NoError(t, err)
	require.True(t, ir.Equal(c.Root(), back.Root()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	err = c.WriteFile(filepath.Join(dir, "no", "such", "dir.cfg"))
	require.ErrorIs(t, err, ir.ErrIO)
}

func TestOptions(t *testing.T) {
	c, err := ReadString(`x = 5; g : { s = "t"; };`)
	require.NoError(t, err)
	_, ok := c.LookupFloat64("x")
	require.False(t, ok)

	c.SetOptions(WithAutoConvert(true))
	require.True(t, c.Options().AutoConvert)
	f, ok := c.LookupFloat64("x")
	require.True(t, ok)
	require.Equal(t, 5.0, f)
	_, ok = c.LookupString("x")
	require.False(t, ok)

	c.SetOptions(
		WithTabWidth(0),
		WithSemicolons(false),
		WithColonForGroups(false),
		WithBraceOnSeparateLine(false),
		WithDefaultFormat(format.Hex))
	require.Equal(t, "x = 0x5\ng = {\n\ts = \"t\"\n}\n", c.WriteString())

	require.NoError(t, c.ReadString(`y = 1;`))
	require.True(t, c.Root().AutoConvert())

	c.Clear()
	require.Nil(t, c.Lookup("y"))
	require.Equal(t, 0, c.Root().Len())
	require.True(t, c.Root().AutoConvert())
	require.Equal(t, 15, New(WithTabWidth(99)).Options().TabWidth)
}

func TestStrict(t *testing.T) {
	_, err := ReadString("a = 1\nb = 2;", WithStrict(true))
	require.ErrorIs(t, err, ir.ErrParse)
	_, err = ReadString("a : 1;", WithStrict(true))
	require.ErrorIs(t, err, ir.ErrParse)
	_, err = ReadString("a : 1;\ng = { };")
	require.NoError(t, err)
}
