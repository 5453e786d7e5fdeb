package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSetGet(t *testing.T) {
	t.Parallel()

	m := NewMap()

	_, ok := m.Get("missing")
	assert.False(t, ok)
	assert.False(t, m.IsSet("missing"))
	assert.Equal(t, 0, m.Len())

	m.Set("a", "1")
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.True(t, m.IsSet("a"))
	assert.Equal(t, 1, m.Len())

	// empty values are set, not missing
	m.Set("b", "")
	v, ok = m.Get("b")
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.True(t, m.IsSet("b"))
}

func TestMapOrder(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("c", "3")
	m.Set("a", "1")
	m.Set("b", "2")
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())

	// re-setting keeps the position
	m.Set("a", "9")
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())

	v, _ := m.Get("a")
	assert.Equal(t, "9", v)
}

func TestMapUnset(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	m.Unset("b")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.IsSet("b"))

	// unsetting a missing key is a no-op
	m.Unset("b")
	assert.Equal(t, 2, m.Len())
}

func TestMapKeysIsCopy(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("a", "1")

	keys := m.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestNewFromMap(t *testing.T) {
	t.Parallel()

	m := NewFromMap(map[string]string{
		"b": "2",
		"a": "1",
		"c": "3",
	})

	// unordered input is inserted in sorted order
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := NewMap()
	base.Set("a", "1")
	base.Set("b", "2")

	overlay := NewMap()
	overlay.Set("b", "override")
	overlay.Set("c", "3")

	merged := Merge(base, overlay)
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())

	v, _ := merged.Get("b")
	assert.Equal(t, "override", v)

	// inputs are untouched
	v, _ = base.Get("b")
	assert.Equal(t, "2", v)

	assert.Equal(t, []string{"a", "b"}, Merge(base, nil).Keys())
	assert.Equal(t, []string{"a", "b"}, Merge(nil, base).Keys())
}

func TestDefaultsChain(t *testing.T) {
	t.Parallel()

	defaults := NewMap()
	defaults.Set("host", "localhost")
	defaults.Set("port", "8080")

	m := NewWithDefaults(defaults)
	m.Set("host", "example.com")

	v, ok := m.Get("host")
	assert.True(t, ok)
	assert.Equal(t, "example.com", v)

	// absent keys fall back to the defaults
	v, ok = m.Get("port")
	assert.True(t, ok)
	assert.Equal(t, "8080", v)

	// but IsSet, Keys and Dump only see the map itself
	assert.False(t, m.IsSet("port"))
	assert.Equal(t, []string{"host"}, m.Keys())
	assert.Equal(t, "host=example.com\n", DumpString(m))

	// unsetting an own key uncovers the default again
	m.Unset("host")
	v, ok = m.Get("host")
	assert.True(t, ok)
	assert.Equal(t, "localhost", v)
}

func TestGlob(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("db.primary.host", "a")
	m.Set("db.primary.port", "b")
	m.Set("db.replica.host", "c")
	m.Set("cache.host", "d")

	keys, err := m.Glob("db.*.host")
	require.NoError(t, err)
	assert.Equal(t, []string{"db.primary.host", "db.replica.host"}, keys)

	keys, err = m.Glob("db.**")
	require.NoError(t, err)
	assert.Equal(t, []string{"db.primary.host", "db.primary.port", "db.replica.host"}, keys)

	keys, err = m.Glob("nomatch.*")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = m.Glob("[")
	require.Error(t, err)
}

func TestNilMap(t *testing.T) {
	t.Parallel()

	var m *Map

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.False(t, m.IsSet("a"))
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	m.Unset("a")

	keys, err := m.Glob("*")
	require.NoError(t, err)
	assert.Nil(t, keys)
}
