package toon

import (
	"bytes"
	"encoding/json"
)

// DecodeJSON parses JSON text into the Value domain this package uses
// elsewhere (*OrderedMap, []Value, nil/bool/float64/string), preserving
// object key order — unlike json.Unmarshal into a bare `any`, which loses
// order by routing through map[string]any. Intended for collaborators (the
// CLI's auto-detect encode path) that need to hand external JSON to
// Marshal without losing the source's field order.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	return decodeJSONValue(dec)
}
