package setting

import (
	"testing"

	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	c, err := ReadString(`a = 1; b = "x"; arr = [ 1, 2 ]; l = ( 1 );`)
	require.NoError(t, err)
	a := c.Lookup("a")

	hex := ir.FromInt32(9)
	require.NoError(t, hex.SetFormat(format.Hex))
	require.NoError(t, c.Set("a", hex))
	require.Same(t, a, c.Lookup("a"))
	require.Equal(t, format.Hex, a.Format())

	require.NoError(t, c.Set("a", ir.FromString("now a string")))
	require.True(t, a.IsRemoved())
	s, ok := c.LookupString("a")
	require.True(t, ok)
	require.Equal(t, "now a string", s)

	require.NoError(t, c.Set("arr[1]", ir.FromInt32(7)))
	require.NoError(t, c.Set("arr[2]", ir.FromInt32(8)))
	require.ErrorIs(t, c.Set("arr[0]", ir.FromString("no")), ir.ErrTypeMismatch)
	require.ErrorIs(t, c.Set("arr[9]", ir.FromInt32(1)), ir.ErrIndexOutOfRange)
	require.NoError(t, c.Set("l[1]", ir.NewGroup()))
	require.ErrorIs(t, c.Set("l[0]", ir.NewGroup()), ir.ErrInvalidOperation)

	require.NoError(t, c.Set("g", ir.NewGroup()))
	require.NoError(t, c.Set("g.x", ir.FromBool(true)))
	require.ErrorIs(t, c.Set("nope.x", ir.FromBool(true)), ir.ErrInvalidOperation)
	require.ErrorIs(t, c.Set("", ir.FromBool(true)), ir.ErrInvalidOperation)
	require.ErrorIs(t, c.Set("bad..path", ir.FromBool(true)), ir.ErrInvalidOperation)

	require.Equal(t, `b = "x";
arr = [ 1, 7, 8 ];
l = ( 1, { } );
a = "now a string";
g :
{
  x = true;
};
`, c.WriteString())
}

func TestSetFailureKeepsTree(t *testing.T) {
	c, err := ReadString(`a : { x = 1; }; b : { x = 2; };`)
	require.NoError(t, err)
	want := c.WriteString()

	require.ErrorIs(t, c.Set("a", c.Lookup("b")), ir.ErrInvalidOperation)
	stale := ir.NewGroup()
	require.NoError(t, c.Root().Attach("tmp", stale))
	require.NoError(t, c.Remove("tmp"))
	require.ErrorIs(t, c.Set("a", stale), ir.ErrStaleReference)
	require.ErrorIs(t, c.Set("a", c.Root()), ir.ErrInvalidOperation)
	require.ErrorIs(t, c.Set("a.x.y", ir.FromInt32(1)), ir.ErrInvalidOperation)

	require.Equal(t, want, c.WriteString())
	v, ok := c.LookupInt32("a.x")
	require.True(t, ok)
	require.Equal(t, int32(1), v)
}
