package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotMapGetSet(t *testing.T) {
	m := DotMap{}
	m.Set("api.process_data", "fn")
	m.Set("api.get_results", "fn2")
	m.Set("docs", "documentation")

	v, ok := m.Get("api.process_data")
	require.True(t, ok)
	assert.Equal(t, "fn", v)

	v, ok = m.Get("docs")
	require.True(t, ok)
	assert.Equal(t, "documentation", v)

	_, ok = m.Get("api.missing")
	assert.False(t, ok)
	_, ok = m.Get("docs.nested")
	assert.False(t, ok, "scalar nodes have no children")

	nested, ok := m.Get("api")
	require.True(t, ok)
	assert.Len(t, nested.(DotMap), 2)
}

func TestDotMapDelete(t *testing.T) {
	m := DotMap{}
	m.Set("a.b.c", 1)
	m.Delete("a.b.c")
	_, ok := m.Get("a.b.c")
	assert.False(t, ok)

	// Deleting missing paths is harmless.
	assert.NotPanics(t, func() {
		m.Delete("a.x.y")
		m.Delete("nope")
	})
}

func TestDefaultDescriptor(t *testing.T) {
	ext := newTestExt("My Extension", "Author")
	d := ext.API()

	assert.Equal(t, "My Extension", d.ExtensionName)
	assert.Empty(t, d.API)
	assert.Empty(t, d.Docs)
}

func TestDescriptorToDotMap(t *testing.T) {
	called := false
	d := Descriptor{
		ExtensionName: "Histogram",
		API: DotMap{
			"compute": func() { called = true },
		},
		Docs:    "compute(): run the analysis",
		Version: "1.2.0",
	}

	m := d.ToDotMap()
	name, ok := m.Get("extension_name")
	require.True(t, ok)
	assert.Equal(t, "Histogram", name)

	v, ok := m.Get("version")
	require.True(t, ok)
	assert.Equal(t, "1.2.0", v)

	fn, ok := m.Get("api.compute")
	require.True(t, ok)
	fn.(func())()
	assert.True(t, called)
}
