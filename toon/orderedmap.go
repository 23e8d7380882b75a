package toon

import (
	"bytes"
	"encoding/json"
)

// OrderedMap is a string-keyed map that preserves insertion order, the
// object representation TOON decodes into and the one its encoder walks.
// The zero value is not usable; construct with NewOrderedMap.
type OrderedMap struct {
	keys   []string
	values map[string]Value
}

// NewOrderedMap returns an empty OrderedMap ready for use.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]Value)}
}

// NewOrderedMapWithCapacity preallocates room for n keys.
func NewOrderedMapWithCapacity(n int) *OrderedMap {
	return &OrderedMap{keys: make([]string, 0, n), values: make(map[string]Value, n)}
}

// Set inserts or overwrites key. Overwriting an existing key does not move
// it within iteration order.
func (m *OrderedMap) Set(key string, val Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, if present, preserving the order of the rest.
func (m *OrderedMap) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by the caller.
func (m *OrderedMap) Keys() []string { return m.keys }

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// Range calls f for each entry in insertion order, stopping early if f
// returns false.
func (m *OrderedMap) Range(f func(key string, val Value) bool) {
	for _, k := range m.keys {
		if !f(k, m.values[k]) {
			return
		}
	}
}

// MarshalJSON renders m as a JSON object in insertion order, letting a
// decoded TOON document round-trip through encoding/json for collaborators
// (such as the CLI) that need a plain JSON rendering.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON populates m from a JSON object, preserving key order at
// every nesting level by walking the token stream directly rather than
// decoding through map[string]any (which Go's encoding/json randomizes).
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := decodeJSONValue(dec)
	if err != nil {
		return err
	}
	om, ok := v.(*OrderedMap)
	if !ok {
		return &EncodeError{Message: "expected JSON object"}
	}
	*m = *om
	return nil
}

// decodeJSONValue reads one JSON value from dec, preserving object key
// order by building *OrderedMap instead of map[string]any.
func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			om := NewOrderedMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				om.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return om, nil
		case '[':
			var out []Value
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				out = append(out, val)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			if out == nil {
				out = []Value{}
			}
			return out, nil
		}
		return nil, &EncodeError{Message: "unexpected JSON delimiter"}
	case float64, string, bool, nil:
		return t, nil
	default:
		return t, nil
	}
}
