package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTabularEligible(t *testing.T) {
	a := newArena()
	mk := func(id int64, name string) NodeId {
		idN := a.add(node{kind: kindInt, intVal: id})
		nameN := a.add(node{kind: kindStr, text: name})
		return a.newObject([]KeyId{a.intern("id"), a.intern("name")}, []NodeId{idN, nameN})
	}
	arr := a.newArray([]NodeId{mk(1, "a"), mk(2, "b")})

	ok := detectTabular(a, arr)
	require.True(t, ok)

	n := a.get(arr)
	assert.Equal(t, kindTabular, n.kind)
	fields := a.tabularFields(n)
	require.Len(t, fields, 2)
	assert.Equal(t, "id", a.keyName(fields[0]))
	assert.Equal(t, "name", a.keyName(fields[1]))
	assert.Len(t, a.tabularRows(n), 4)
}

func TestDetectTabularRejectsMismatchedKeys(t *testing.T) {
	a := newArena()
	obj1 := a.newObject([]KeyId{a.intern("id")}, []NodeId{a.add(node{kind: kindInt, intVal: 1})})
	obj2 := a.newObject([]KeyId{a.intern("name")}, []NodeId{a.add(node{kind: kindStr, text: "x"})})
	arr := a.newArray([]NodeId{obj1, obj2})

	assert.False(t, detectTabular(a, arr))
	assert.Equal(t, kindArray, a.get(arr).kind)
}

func TestDetectTabularRejectsNestedContainer(t *testing.T) {
	a := newArena()
	nested := a.newArray(nil)
	obj := a.newObject([]KeyId{a.intern("items")}, []NodeId{nested})
	arr := a.newArray([]NodeId{obj})

	assert.False(t, detectTabular(a, arr))
}

func TestDetectTabularRejectsEmptyArray(t *testing.T) {
	a := newArena()
	arr := a.newArray(nil)
	assert.False(t, detectTabular(a, arr))
}
