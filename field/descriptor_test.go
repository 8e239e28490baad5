package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docfields/docfields/fieldpath"
	"github.com/docfields/docfields/ir"
)

func TestNew(t *testing.T) {
	d, err := New("a.b", Description("the b"), Optional())
	require.NoError(t, err)
	require.Equal(t, "a.b", d.Path().String())
	require.Equal(t, "the b", d.Description())
	require.True(t, d.Optional())
	require.False(t, d.Ignored())
	require.False(t, d.Subsection())
	_, ok := d.Type()
	require.False(t, ok)
}

func TestNewBadPath(t *testing.T) {
	_, err := New("a..b")
	require.ErrorIs(t, err, fieldpath.ErrPath)
}

func TestTypeOption(t *testing.T) {
	d, err := New("a", Type(ir.NullType))
	require.NoError(t, err)
	typ, ok := d.Type()
	require.True(t, ok)
	require.Equal(t, ir.NullType, typ)
}

func TestMustNewPanics(t *testing.T) {
	require.Panics(t, func() { MustNew("") })
}

func TestList(t *testing.T) {
	l := List{
		MustNew("b"),
		MustNew("a", Ignored()),
		MustNew("c[].d"),
	}
	require.Equal(t, []string{"b", "a", "c[].d"}, l.Paths())
	require.Equal(t, []string{"b", "c[].d"}, l.WithoutIgnored().Paths())
}

func TestDescriptorIsValue(t *testing.T) {
	d := MustNew("a", Ignored(), Subsection())
	cp := d
	require.True(t, cp.Ignored())
	require.True(t, cp.Subsection())
}
