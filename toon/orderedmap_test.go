package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("c", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())

	m.Set("a", 20)
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys(), "overwrite must not reorder")
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("z", 3)
	m.Delete("y")
	assert.Equal(t, []string{"x", "z"}, m.Keys())
	_, ok := m.Get("y")
	assert.False(t, ok)
}

func TestOrderedMapJSONRoundTrip(t *testing.T) {
	m := NewOrderedMap()
	m.Set("name", "Ada")
	m.Set("age", int64(37))
	nested := NewOrderedMap()
	nested.Set("z", "last")
	nested.Set("a", "first")
	m.Set("meta", nested)

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ada","age":37,"meta":{"z":"last","a":"first"}}`, string(data))

	var out OrderedMap
	require.NoError(t, out.UnmarshalJSON(data))
	assert.Equal(t, []string{"name", "age", "meta"}, out.Keys())

	metaVal, _ := out.Get("meta")
	metaMap, ok := metaVal.(*OrderedMap)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a"}, metaMap.Keys())
}
