package toon

// materialize converts an arena node into the public Value domain: nil,
// bool, int64, float64, string, []Value, or *OrderedMap.
func materialize(a *arena, id NodeId) Value {
	n := a.get(id)
	switch n.kind {
	case kindNull:
		return nil
	case kindBool:
		return n.boolVal
	case kindInt:
		return n.intVal
	case kindFloat:
		return n.floatVal
	case kindNumText:
		if v, err := parseNumberLexeme(n.text); err == nil {
			return v
		}
		return n.text
	case kindStr:
		return n.text
	case kindArray:
		elems := a.arrayElems(n)
		out := make([]Value, len(elems))
		for i, el := range elems {
			out[i] = materialize(a, el)
		}
		return out
	case kindObject:
		keys := a.objectKeys(n)
		vals := a.objectVals(n)
		m := NewOrderedMapWithCapacity(len(keys))
		for i, k := range keys {
			m.Set(a.keyName(k), materialize(a, vals[i]))
		}
		return m
	case kindTabular:
		fields := a.tabularFields(n)
		rows := a.tabularRows(n)
		fieldCount := len(fields)
		rowCount := 0
		if fieldCount > 0 {
			rowCount = len(rows) / fieldCount
		}
		out := make([]Value, rowCount)
		for r := 0; r < rowCount; r++ {
			m := NewOrderedMapWithCapacity(fieldCount)
			base := r * fieldCount
			for c, f := range fields {
				m.Set(a.keyName(f), materialize(a, rows[base+c]))
			}
			out[r] = m
		}
		return out
	default:
		return nil
	}
}
