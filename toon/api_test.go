package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSimpleObject(t *testing.T) {
	m := NewOrderedMap()
	m.Set("name", "Ada")
	m.Set("age", int64(37))

	out, err := MarshalToString(m)
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\nage: 37\n", out)
}

func TestUnmarshalSimpleObject(t *testing.T) {
	v, err := UnmarshalFromString("name: Margaret\nage: 32\n")
	require.NoError(t, err)
	m, ok := v.(*OrderedMap)
	require.True(t, ok)

	name, _ := m.Get("name")
	age, _ := m.Get("age")
	assert.Equal(t, "Margaret", name)
	assert.Equal(t, int64(32), age)
}

func TestMarshalInlineArrayWithPipeDelimiter(t *testing.T) {
	m := NewOrderedMap()
	m.Set("items", []Value{"a", "b"})

	out, err := MarshalToString(m, WithDelimiter('|'))
	require.NoError(t, err)
	assert.Equal(t, "items[2|]: a|b\n", out)
}

func TestDecodeExpandPaths(t *testing.T) {
	v, err := UnmarshalFromString("a.b: 1\n", WithExpandPaths(ExpandPathsSafe))
	require.NoError(t, err)
	m, ok := v.(*OrderedMap)
	require.True(t, ok)

	aVal, ok := m.Get("a")
	require.True(t, ok)
	aMap, ok := aVal.(*OrderedMap)
	require.True(t, ok)
	bVal, _ := aMap.Get("b")
	assert.Equal(t, int64(1), bVal)
}

func TestEncodeNaNAsNull(t *testing.T) {
	m := NewOrderedMap()
	m.Set("n", nanValue())

	out, err := MarshalToString(m)
	require.NoError(t, err)
	assert.Equal(t, "n: null\n", out)
}

func nanValue() float64 {
	var z float64
	return z / z
}

func TestTabularRoundTrip(t *testing.T) {
	rows := []Value{}
	for i := 0; i < 3; i++ {
		row := NewOrderedMap()
		row.Set("id", int64(i))
		row.Set("name", "repo")
		row.Set("stars", int64(i*10))
		rows = append(rows, row)
	}
	m := NewOrderedMap()
	m.Set("repos", rows)

	out, err := MarshalToString(m)
	require.NoError(t, err)

	decoded, err := UnmarshalFromString(out)
	require.NoError(t, err)

	reencoded, err := MarshalToString(decoded)
	require.NoError(t, err)
	assert.Equal(t, out, reencoded, "idempotent re-encode must be byte-identical")
}

func TestMarshalRootTabularArray(t *testing.T) {
	rows := []Value{}
	for i := 0; i < 3; i++ {
		row := NewOrderedMap()
		row.Set("id", int64(i))
		row.Set("name", "repo")
		row.Set("stars", int64(i*10))
		rows = append(rows, row)
	}

	out, err := MarshalToString(rows)
	require.NoError(t, err)
	assert.Equal(t, "[3]{id,name,stars}:\n  0,repo,0\n  1,repo,10\n  2,repo,20\n", out)

	decoded, err := UnmarshalFromString(out)
	require.NoError(t, err)
	reencoded, err := MarshalToString(decoded)
	require.NoError(t, err)
	assert.Equal(t, out, reencoded, "root tabular array must round-trip byte-identically")
}

func TestStrictRejectsBlankLineInsideTabularBlock(t *testing.T) {
	text := "items[2]{id,name}:\n  1,a\n\n  2,b\n"
	_, err := UnmarshalFromString(text, WithStrict(true))
	require.Error(t, err)

	v, err := UnmarshalFromString(text, WithStrict(false))
	require.NoError(t, err)
	m := v.(*OrderedMap)
	items, _ := m.Get("items")
	list := items.([]Value)
	assert.Len(t, list, 2, "lenient mode tolerates the blank line and still finds both rows")
}

func TestStrictRejectsDuplicateKeys(t *testing.T) {
	_, err := UnmarshalFromString("a: 1\na: 2\n", WithStrict(true))
	require.Error(t, err)

	v, err := UnmarshalFromString("a: 1\na: 2\n", WithStrict(false))
	require.NoError(t, err)
	m := v.(*OrderedMap)
	val, _ := m.Get("a")
	assert.Equal(t, int64(2), val, "lenient mode takes last-wins")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("name: Ada\n"))
	assert.Error(t, Validate("items[2: a,b\n"))
}

func TestCountFidelity(t *testing.T) {
	v, err := UnmarshalFromString("items[3]: a,b,c\n")
	require.NoError(t, err)
	m := v.(*OrderedMap)
	items, _ := m.Get("items")
	list := items.([]Value)
	assert.Len(t, list, 3)
}

func TestListBlockWithNestedObjects(t *testing.T) {
	text := "items[2]:\n  - id: 1\n    name: a\n  - id: 2\n    name: b\n"
	v, err := UnmarshalFromString(text)
	require.NoError(t, err)
	m := v.(*OrderedMap)
	items, _ := m.Get("items")
	list := items.([]Value)
	require.Len(t, list, 2)

	first := list[0].(*OrderedMap)
	id, _ := first.Get("id")
	name, _ := first.Get("name")
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "a", name)
}
