package toon

// detectTabular replaces id's node in place with a kindTabular node when the
// array it names is tabular-eligible, and returns whether it did. Eligible
// means: at least one element, every element an object, all objects sharing
// the same key set and order, and every field value a scalar. Detection
// exits on the first disqualifying element.
func detectTabular(a *arena, id NodeId) bool {
	n := a.get(id)
	if n.kind != kindArray || n.childLen == 0 {
		return false
	}
	// Copy out everything needed from n before any further allocation: a.add
	// may grow and reallocate a.nodes, which would invalidate n.
	elems := append([]NodeId(nil), a.arrayElems(n)...)

	first := a.get(elems[0])
	if first.kind != kindObject {
		return false
	}
	fields := append([]KeyId(nil), a.objectKeys(first)...)
	if !allScalar(a, a.objectVals(first)) {
		return false
	}

	rows := make([]NodeId, 0, len(elems)*len(fields))
	rows = append(rows, a.objectVals(first)...)

	for i := 1; i < len(elems); i++ {
		obj := a.get(elems[i])
		if obj.kind != kindObject {
			return false
		}
		keys := a.objectKeys(obj)
		if len(keys) != len(fields) {
			return false
		}
		for j, k := range keys {
			if k != fields[j] {
				return false
			}
		}
		vals := a.objectVals(obj)
		if !allScalar(a, vals) {
			return false
		}
		rows = append(rows, vals...)
	}

	tab := a.newTabular(fields, rows)
	a.nodes[id] = a.nodes[tab]
	return true
}

func allScalar(a *arena, ids []NodeId) bool {
	for _, id := range ids {
		switch a.get(id).kind {
		case kindArray, kindObject, kindTabular:
			return false
		}
	}
	return true
}

// detectTabularRecursive walks the whole tree converting every eligible
// array node into its tabular form, bottom-up so nested arrays of objects
// are detected before their parents are examined.
func detectTabularRecursive(a *arena, id NodeId) {
	n := a.get(id)
	kind := n.kind
	switch kind {
	case kindArray:
		children := append([]NodeId(nil), a.arrayElems(n)...)
		for _, child := range children {
			detectTabularRecursive(a, child)
		}
		detectTabular(a, id)
	case kindObject:
		children := append([]NodeId(nil), a.objectVals(n)...)
		for _, child := range children {
			detectTabularRecursive(a, child)
		}
	}
}
