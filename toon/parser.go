package toon

import "strings"

// parser drives structural parsing of a line tape into an arena. It holds
// no state beyond the arena, the tape, and the active options; recursion
// carries depth and delimiter context explicitly, mirroring the container
// stack described in §4.4.
type parser struct {
	a     *arena
	lines []lineSpan
	opts  DecodeOptions
	depthLimit int
}

// parseDocument parses the full line tape and returns the root node id.
func parseDocument(a *arena, lines []lineSpan, opts DecodeOptions) (NodeId, *DecodeError) {
	p := &parser{a: a, lines: lines, opts: opts, depthLimit: opts.MaxDepth}

	idx := firstNonBlank(lines, 0)
	if idx >= len(lines) {
		return a.newObject(nil, nil), nil
	}

	first := lines[idx]
	if first.body[0] == openBracket {
		id, next, err := p.parseArrayAt(idx, 0, opts.Delimiter)
		if err != nil {
			return nilNode, err
		}
		if tail := firstNonBlank(lines, next); tail < len(lines) {
			return nilNode, structureErr(&lines[tail], "multiple root values")
		}
		return id, nil
	}

	h, herr := parseHeaderLine(first.body, &first)
	if herr != nil {
		return nilNode, herr
	}
	if h.isScalarRoot {
		if tail := firstNonBlank(lines, idx+1); tail < len(lines) {
			return nilNode, structureErr(&lines[tail], "multiple root primitives")
		}
		v, verr := parseCellToken(strings.TrimSpace(h.value), &first)
		if verr != nil {
			return nilNode, verr
		}
		return p.scalarNode(v), nil
	}

	id, _, err := p.parseObjectAt(idx, 0, opts.Delimiter)
	return id, err
}

func firstNonBlank(lines []lineSpan, from int) int {
	i := from
	for i < len(lines) && lines[i].blank {
		i++
	}
	return i
}

// nextRowLine advances from j to the line that should hold the next
// row/item of an array or tabular block still expecting more of them. In
// strict mode a blank line found there is rejected outright rather than
// skipped, per §4.7; lenient mode skips blanks as before.
func (p *parser) nextRowLine(j int) (int, *DecodeError) {
	if p.opts.Strict && j < len(p.lines) && p.lines[j].blank {
		return j, structureErr(&p.lines[j], "blank line inside array/tabular block")
	}
	return firstNonBlank(p.lines, j), nil
}

func (p *parser) scalarNode(v Value) NodeId {
	switch t := v.(type) {
	case nil:
		return p.a.add(node{kind: kindNull})
	case bool:
		return p.a.add(node{kind: kindBool, boolVal: t})
	case int64:
		return p.a.add(node{kind: kindInt, intVal: t})
	case float64:
		return p.a.add(node{kind: kindFloat, floatVal: t})
	case string:
		return p.a.add(node{kind: kindStr, text: t})
	default:
		return p.a.add(node{kind: kindNull})
	}
}

// parseObjectAt parses a run of sibling "key: ..." lines starting at idx,
// all indented at exactly depth, until a line at a shallower depth (or EOF)
// ends the block. Returns the object node and the index of the first line
// not consumed.
func (p *parser) parseObjectAt(idx int, depth int, delim byte) (NodeId, int, *DecodeError) {
	if depth > p.depthLimit {
		return nilNode, idx, structureErr(&p.lines[idx], "maximum nesting depth exceeded")
	}
	var keys []KeyId
	var vals []NodeId
	seen := map[string]bool{}

	i := idx
	for {
		i = firstNonBlank(p.lines, i)
		if i >= len(p.lines) || p.lines[i].depth(p.opts.Indent) != depth {
			break
		}
		line := p.lines[i]
		if strings.HasPrefix(line.body, listItemPrefix) || line.body == dashLiteral {
			break
		}

		h, herr := parseHeaderLine(line.body, &line)
		if herr != nil {
			return nilNode, i, herr
		}
		if !h.hasKey {
			return nilNode, i, syntaxErr(&line, "expected key in object context")
		}
		if p.opts.Strict && seen[h.key] {
			return nilNode, i, structureErr(&line, "duplicate key: "+h.key)
		}
		seen[h.key] = true

		valID, next, verr := p.parseFieldValue(h, i, depth, delim)
		if verr != nil {
			return nilNode, i, verr
		}
		keys = append(keys, p.a.intern(h.key))
		vals = append(vals, valID)
		i = next
	}

	if p.opts.ExpandPaths == ExpandPathsSafe {
		id, err := p.expandObjectPaths(keys, vals)
		if err != nil {
			return nilNode, i, err
		}
		return id, i, nil
	}
	return p.a.newObject(keys, vals), i, nil
}

// parseFieldValue parses the value belonging to header h, which occupies
// line index i at the given depth. Returns the value node and the index of
// the first unconsumed line.
func (p *parser) parseFieldValue(h headerLine, i int, depth int, delim byte) (NodeId, int, *DecodeError) {
	line := &p.lines[i]
	fieldDelim := delim
	if h.hasLength {
		fieldDelim = h.delim
	}

	switch {
	case h.hasFields:
		return p.parseTabularBody(h, i, depth, fieldDelim)
	case h.hasLength && h.hasValue:
		return p.parseInlineArrayValue(h, i, fieldDelim)
	case h.hasLength:
		return p.parseListBody(h, i, depth, fieldDelim)
	case h.hasValue:
		v, verr := parseCellToken(strings.TrimSpace(h.value), line)
		if verr != nil {
			return nilNode, i, verr
		}
		return p.scalarNode(v), i + 1, nil
	default:
		// No inline value: a nested object when lines follow at depth+1,
		// otherwise an empty object.
		next := firstNonBlank(p.lines, i+1)
		if next < len(p.lines) && p.lines[next].depth(p.opts.Indent) == depth+1 {
			return p.parseObjectAt(i+1, depth+1, fieldDelim)
		}
		return p.a.newObject(nil, nil), i + 1, nil
	}
}

func (p *parser) parseInlineArrayValue(h headerLine, i int, delim byte) (NodeId, int, *DecodeError) {
	line := &p.lines[i]
	toks, ferr := splitFields(h.value, delim, line)
	if ferr != nil {
		return nilNode, i, ferr
	}
	if len(toks) != h.length {
		return nilNode, i, structureErr(line, "array length does not match element count")
	}
	elems := make([]NodeId, len(toks))
	for j, t := range toks {
		v, verr := parseCellToken(t, line)
		if verr != nil {
			return nilNode, i, verr
		}
		elems[j] = p.scalarNode(v)
	}
	return p.a.newArray(elems), i + 1, nil
}

func (p *parser) parseTabularBody(h headerLine, i int, depth int, delim byte) (NodeId, int, *DecodeError) {
	fieldIds := make([]KeyId, len(h.fields))
	for j, f := range h.fields {
		fieldIds[j] = p.a.intern(f)
	}

	rows := make([]NodeId, 0, h.length*len(h.fields))
	j := i + 1
	rowCount := 0
	for rowCount < h.length {
		var jerr *DecodeError
		j, jerr = p.nextRowLine(j)
		if jerr != nil {
			return nilNode, i, jerr
		}
		if j >= len(p.lines) || p.lines[j].depth(p.opts.Indent) != depth+1 {
			return nilNode, i, structureErr(&p.lines[i], "tabular array declared more rows than present")
		}
		line := p.lines[j]
		toks, ferr := splitFields(line.body, delim, &line)
		if ferr != nil {
			return nilNode, i, ferr
		}
		if len(toks) != len(h.fields) {
			return nilNode, i, structureErr(&line, "tabular row has wrong number of cells")
		}
		for _, t := range toks {
			v, verr := parseCellToken(t, &line)
			if verr != nil {
				return nilNode, i, verr
			}
			rows = append(rows, p.scalarNode(v))
		}
		rowCount++
		j++
	}
	return p.a.newTabular(fieldIds, rows), j, nil
}

func (p *parser) parseListBody(h headerLine, i int, depth int, delim byte) (NodeId, int, *DecodeError) {
	elems := make([]NodeId, 0, h.length)
	j := i + 1
	count := 0
	for count < h.length {
		var jerr *DecodeError
		j, jerr = p.nextRowLine(j)
		if jerr != nil {
			return nilNode, i, jerr
		}
		if j >= len(p.lines) || p.lines[j].depth(p.opts.Indent) != depth+1 {
			return nilNode, i, structureErr(&p.lines[i], "array declared more items than present")
		}
		line := p.lines[j]
		if line.body == dashLiteral {
			elems = append(elems, p.a.newObject(nil, nil))
			count++
			j++
			continue
		}
		if !strings.HasPrefix(line.body, listItemPrefix) {
			return nilNode, i, syntaxErr(&line, "expected list item starting with '- '")
		}
		rest := line.body[len(listItemPrefix):]
		restLine := line
		restLine.body = rest

		id, next, ierr := p.parseListItemBody(rest, &restLine, j, depth+1, delim)
		if ierr != nil {
			return nilNode, i, ierr
		}
		elems = append(elems, id)
		count++
		j = next
	}
	return p.a.newArray(elems), j, nil
}

// parseListItemBody parses the content following "- " on line j (at
// itemDepth, the depth of the hyphen itself) and any continuation lines
// indented one level deeper than it.
func (p *parser) parseListItemBody(rest string, restLine *lineSpan, j int, itemDepth int, delim byte) (NodeId, int, *DecodeError) {
	if rest == "" {
		next := firstNonBlank(p.lines, j+1)
		if next < len(p.lines) && p.lines[next].depth(p.opts.Indent) == itemDepth+1 {
			return p.parseObjectAt(j+1, itemDepth+1, delim)
		}
		return p.a.newObject(nil, nil), j + 1, nil
	}

	if rest[0] == openBracket {
		return p.parseArrayAt(j, itemDepth, delim)
	}

	h, herr := parseHeaderLine(rest, restLine)
	if herr != nil {
		return nilNode, j, herr
	}
	if h.isScalarRoot {
		v, verr := parseCellToken(strings.TrimSpace(rest), restLine)
		if verr != nil {
			return nilNode, j, verr
		}
		return p.scalarNode(v), j + 1, nil
	}

	firstValID, next, ferr := p.parseFieldValue(h, j, itemDepth, delim)
	if ferr != nil {
		return nilNode, j, ferr
	}
	keys := []KeyId{p.a.intern(h.key)}
	vals := []NodeId{firstValID}

	more, tail, oerr := p.parseObjectAt(next, itemDepth+1, delim)
	if oerr != nil {
		return nilNode, j, oerr
	}
	moreNode := p.a.get(more)
	if moreNode.kind == kindObject && moreNode.childLen > 0 {
		keys = append(keys, p.a.objectKeys(moreNode)...)
		vals = append(vals, p.a.objectVals(moreNode)...)
	}
	return p.a.newObject(keys, vals), tail, nil
}

// parseArrayAt parses a header-only array construct (no preceding key),
// used for root arrays and for array-valued list items.
func (p *parser) parseArrayAt(idx int, depth int, delim byte) (NodeId, int, *DecodeError) {
	line := p.lines[idx]
	line.body = strings.TrimPrefix(line.body, listItemPrefix)
	h, herr := parseHeaderLine(line.body, &line)
	if herr != nil {
		return nilNode, idx, herr
	}
	return p.parseFieldValue(h, idx, depth, delim)
}

// expandObjectPaths rebuilds an object's fields applying dotted-key path
// expansion: any key matching the dotted-key pattern and containing a dot
// is split and merged into nested objects. Conflicts with an existing
// non-object value at an intermediate path are Path errors.
func (p *parser) expandObjectPaths(keys []KeyId, vals []NodeId) (NodeId, *DecodeError) {
	root := NewOrderedMap()
	for i, k := range keys {
		name := p.a.keyName(k)
		if !dottedKeyPattern(name) || !strings.Contains(name, ".") {
			root.Set(name, nodeRef{p.a, vals[i]})
			continue
		}
		segs := expandPath(name)
		if err := mergePath(root, segs, nodeRef{p.a, vals[i]}); err != nil {
			return nilNode, &DecodeError{Kind: KindPath, Message: err.Error(), Token: name}
		}
	}
	return p.objectMapToNode(root), nil
}

// nodeRef defers materializing an arena node into an OrderedMap-compatible
// Value until path-expansion merging has settled conflicts, since most
// fields pass through untouched.
type nodeRef struct {
	a  *arena
	id NodeId
}

func mergePath(root *OrderedMap, segs []string, leaf nodeRef) error {
	cur := root
	for i, seg := range segs {
		if i == len(segs)-1 {
			if existing, ok := cur.Get(seg); ok {
				if _, isMap := existing.(*OrderedMap); isMap {
					return errPathConflict
				}
			}
			cur.Set(seg, leaf)
			return nil
		}
		next, ok := cur.Get(seg)
		if !ok {
			m := NewOrderedMap()
			cur.Set(seg, m)
			cur = m
			continue
		}
		if ref, isRef := next.(nodeRef); isRef {
			if rn := ref.a.get(ref.id); rn.kind == kindObject {
				om := NewOrderedMapWithCapacity(rn.childLen)
				refVals := ref.a.objectVals(rn)
				for k, kid := range ref.a.objectKeys(rn) {
					om.Set(ref.a.keyName(kid), nodeRef{ref.a, refVals[k]})
				}
				cur.Set(seg, om)
				next = om
			}
		}
		m, isMap := next.(*OrderedMap)
		if !isMap {
			return errPathConflict
		}
		cur = m
	}
	return nil
}

var errPathConflict = stringErr("path expansion conflicts with an existing value")

// objectMapToNode converts an OrderedMap of nodeRef/*OrderedMap values
// produced by expandObjectPaths back into arena nodes.
func (p *parser) objectMapToNode(m *OrderedMap) NodeId {
	keys := m.Keys()
	keyIds := make([]KeyId, len(keys))
	vals := make([]NodeId, len(keys))
	for i, k := range keys {
		v, _ := m.Get(k)
		keyIds[i] = p.a.intern(k)
		switch t := v.(type) {
		case nodeRef:
			vals[i] = t.id
		case *OrderedMap:
			vals[i] = p.objectMapToNode(t)
		}
	}
	return p.a.newObject(keyIds, vals)
}
