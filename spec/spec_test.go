package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docfields/docfields/ir"
)

const sampleSet = `
name: order
fields:
- path: id
  description: order identifier
  type: Number
- path: items
  description: ordered items
- path: items[].sku
  optional: true
- path: meta
  ignored: true
- path: shipping
  subsection: true
`

func TestLoad(t *testing.T) {
	set, err := Load([]byte(sampleSet))
	require.NoError(t, err)
	require.Equal(t, "order", set.Name)
	require.Len(t, set.Fields, 5)

	descs, err := set.Descriptors()
	require.NoError(t, err)
	require.Equal(t, "id", descs[0].Path().String())
	typ, ok := descs[0].Type()
	require.True(t, ok)
	require.Equal(t, ir.NumberType, typ)
	require.Equal(t, "order identifier", descs[0].Description())
	require.True(t, descs[2].Optional())
	require.True(t, descs[3].Ignored())
	require.True(t, descs[4].Subsection())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]byte("name: empty\nfields: []\n"))
	require.ErrorIs(t, err, ErrSpec)

	_, err = Load([]byte("fields: [\n"))
	require.ErrorIs(t, err, ErrSpec)

	_, err = Load([]byte("fields:\n- path: a\n  type: Nope\n"))
	require.ErrorIs(t, err, ErrSpec)

	_, err = Load([]byte("fields:\n- path: 'a..b'\n"))
	require.ErrorIs(t, err, ErrSpec)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields:\n- path: a\n"), 0644))

	set, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, path, set.Name)

	_, err = LoadFile(filepath.Join(dir, "absent.yaml"))
	require.ErrorIs(t, err, ErrSpec)
}

func TestRegistry(t *testing.T) {
	set := &Set{Name: "registry-test", Fields: []FieldSpec{{Path: "a"}}}
	require.NoError(t, Register(set))
	require.Error(t, Register(set))
	require.Error(t, Register(nil))
	require.Error(t, Register(&Set{}))

	require.Equal(t, set, Lookup("registry-test"))
	require.Nil(t, Lookup("absent"))
	require.Contains(t, All(), "registry-test")
}
