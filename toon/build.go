package toon

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// buildNode converts a Go value into an arena node. Supported inputs are the
// Value domain produced by Unmarshal (nil, bool, int64, float64, string,
// []Value, *OrderedMap) plus the wider set a caller might hand to Marshal
// directly: any integer/float kind, map[string]any (unordered; encounter
// order becomes Go's randomized map iteration order, so canonical mode or a
// *OrderedMap input is recommended when order matters), and slices of any
// element type.
func buildNode(a *arena, v Value) (NodeId, error) {
	if v == nil {
		return a.add(node{kind: kindNull}), nil
	}
	switch t := v.(type) {
	case bool:
		return a.add(node{kind: kindBool, boolVal: t}), nil
	case string:
		return a.add(node{kind: kindStr, text: t}), nil
	case int:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case int8:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case int16:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case int32:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case int64:
		return a.add(node{kind: kindInt, intVal: t}), nil
	case uint:
		if uint64(t) > math.MaxInt64 {
			return a.add(node{kind: kindNumText, text: strconv.FormatUint(uint64(t), 10)}), nil
		}
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case uint8:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case uint16:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case uint32:
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case uint64:
		if t > math.MaxInt64 {
			return a.add(node{kind: kindNumText, text: strconv.FormatUint(t, 10)}), nil
		}
		return a.add(node{kind: kindInt, intVal: int64(t)}), nil
	case float32:
		return a.add(node{kind: kindFloat, floatVal: float64(t)}), nil
	case float64:
		return a.add(node{kind: kindFloat, floatVal: t}), nil
	case *OrderedMap:
		return buildObjectNode(a, t)
	case []Value:
		return buildArrayNode(a, t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]NodeId, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			id, err := buildNode(a, rv.Index(i).Interface())
			if err != nil {
				return nilNode, err
			}
			elems[i] = id
		}
		return a.newArray(elems), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nilNode, &EncodeError{Message: "map keys must be strings", Value: v}
		}
		om := NewOrderedMapWithCapacity(rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			om.Set(iter.Key().String(), iter.Value().Interface())
		}
		return buildObjectNode(a, om)
	case reflect.Ptr:
		if rv.IsNil() {
			return a.add(node{kind: kindNull}), nil
		}
		return buildNode(a, rv.Elem().Interface())
	}
	return nilNode, &EncodeError{Message: fmt.Sprintf("unsupported value type %T", v), Value: v}
}

func buildArrayNode(a *arena, items []Value) (NodeId, error) {
	elems := make([]NodeId, len(items))
	for i, item := range items {
		id, err := buildNode(a, item)
		if err != nil {
			return nilNode, err
		}
		elems[i] = id
	}
	return a.newArray(elems), nil
}

func buildObjectNode(a *arena, m *OrderedMap) (NodeId, error) {
	keys := m.Keys()
	keyIds := make([]KeyId, len(keys))
	vals := make([]NodeId, len(keys))
	for i, k := range keys {
		v, _ := m.Get(k)
		id, err := buildNode(a, v)
		if err != nil {
			return nilNode, err
		}
		keyIds[i] = a.intern(k)
		vals[i] = id
	}
	return a.newObject(keyIds, vals), nil
}
