package toon

import (
	"strconv"
	"strings"
)

// emitter walks an arena and writes canonical TOON bytes for it.
type emitter struct {
	a          *arena
	opts       EncodeOptions
	buf        strings.Builder
	indentCache []string
}

func newEmitter(a *arena, opts EncodeOptions) *emitter {
	return &emitter{a: a, opts: opts}
}

func (e *emitter) indentFor(depth int) string {
	for len(e.indentCache) <= depth {
		e.indentCache = append(e.indentCache, strings.Repeat(" ", len(e.indentCache)*e.opts.Indent))
	}
	return e.indentCache[depth]
}

// emitDocument writes the top-level value rooted at id and returns the
// completed buffer contents.
func (e *emitter) emitDocument(id NodeId) string {
	n := e.a.get(id)
	switch n.kind {
	case kindObject:
		if n.childLen == 0 {
			// An empty object has no lines of its own; emit nothing.
			return e.buf.String()
		}
		e.emitObjectBody(id, 0, e.opts.Delimiter)
	case kindTabular:
		e.writeTabularHeaderAndBody("", id, 0, e.opts.Delimiter)
	case kindArray:
		e.emitRootArray(id)
	default:
		e.emitScalarLine(id, e.opts.Delimiter)
	}
	return e.buf.String()
}

func (e *emitter) emitRootArray(id NodeId) {
	e.writeArrayHeaderAndBody("", id, 0, e.opts.Delimiter, true)
}

// emitObjectBody writes one line per key of the object node id, at depth,
// recursing into nested containers. delim is the delimiter active in this
// scope.
func (e *emitter) emitObjectBody(id NodeId, depth int, delim byte) {
	n := e.a.get(id)
	keys := append([]KeyId(nil), e.a.objectKeys(n)...)
	vals := append([]NodeId(nil), e.a.objectVals(n)...)

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	if e.opts.Canonical {
		sortIndicesByKey(order, keys, e.a)
	}

	folded := e.opts.KeyFolding == KeyFoldingSafe

	for _, i := range order {
		keyName := e.a.keyName(keys[i])
		valID := vals[i]
		path := []string{keyName}
		target := valID
		if folded {
			path, target = foldKeyChain(e.a, keyName, valID, e.opts.FlattenDepth)
		}
		e.emitField(path, target, depth, delim)
	}
}

func sortIndicesByKey(order []int, keys []KeyId, a *arena) {
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && a.keyName(keys[order[j-1]]) > a.keyName(keys[order[j]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}

func joinFoldedKey(path []string) string { return strings.Join(path, ".") }

// emitField writes a single "key: value" (or header) line for a field whose
// dotted name is path, at depth, recursing as needed.
func (e *emitter) emitField(path []string, id NodeId, depth int, delim byte) {
	keyText := joinFoldedKey(path)
	safeKey := quoteKeyText(keyText, delim)
	n := e.a.get(id)

	switch n.kind {
	case kindArray:
		e.writeArrayHeaderAndBody(safeKey, id, depth, delim, false)
	case kindTabular:
		e.writeTabularHeaderAndBody(safeKey, id, depth, delim)
	case kindObject:
		if n.childLen == 0 {
			e.buf.WriteString(e.indentFor(depth))
			e.buf.WriteString(safeKey)
			e.buf.WriteString(":\n")
			return
		}
		e.buf.WriteString(e.indentFor(depth))
		e.buf.WriteString(safeKey)
		e.buf.WriteString(":\n")
		e.emitObjectBody(id, depth+1, delim)
	default:
		e.buf.WriteString(e.indentFor(depth))
		e.buf.WriteString(safeKey)
		e.buf.WriteString(": ")
		e.buf.WriteString(e.scalarText(id, delim))
		e.buf.WriteByte('\n')
	}
}

// quoteKeyText quotes a (possibly dotted, when folded) key if any of its
// dot-separated segments are not bare-safe, or the whole text contains
// structural characters outside the allowed bare-key pattern.
func quoteKeyText(key string, delim byte) string {
	if safeBareKey(key, delim) {
		return key
	}
	return quoteAndEscape(key)
}

// writeArrayHeaderAndBody writes a non-tabular array: inline if every
// element is scalar, otherwise a list block. keyPrefix is "" for the array
// root, otherwise "key" with no trailing colon/space yet.
func (e *emitter) writeArrayHeaderAndBody(keyPrefix string, id NodeId, depth int, delim byte, isRoot bool) {
	n := e.a.get(id)
	elems := e.a.arrayElems(n)

	if allScalar(e.a, elems) {
		e.emitInlineArray(keyPrefix, elems, depth, delim, isRoot)
		return
	}
	e.emitListArray(keyPrefix, elems, depth, delim, isRoot)
}

func (e *emitter) emitInlineArray(keyPrefix string, elems []NodeId, depth int, delim byte, isRoot bool) {
	e.buf.WriteString(e.indentFor(depth))
	if keyPrefix != "" {
		e.buf.WriteString(keyPrefix)
	}
	e.buf.WriteByte(openBracket)
	e.buf.WriteString(strconv.Itoa(len(elems)))
	if delim != defaultDelimiter {
		e.buf.WriteByte(delim)
	}
	e.buf.WriteByte(closeBracket)
	e.buf.WriteByte(colon)
	if len(elems) == 0 {
		e.buf.WriteByte('\n')
		return
	}
	e.buf.WriteByte(' ')
	for i, el := range elems {
		if i > 0 {
			e.buf.WriteByte(delim)
		}
		e.buf.WriteString(e.scalarText(el, delim))
	}
	e.buf.WriteByte('\n')
}

func (e *emitter) emitListArray(keyPrefix string, elems []NodeId, depth int, delim byte, isRoot bool) {
	e.buf.WriteString(e.indentFor(depth))
	if keyPrefix != "" {
		e.buf.WriteString(keyPrefix)
	}
	e.buf.WriteByte(openBracket)
	e.buf.WriteString(strconv.Itoa(len(elems)))
	e.buf.WriteByte(closeBracket)
	e.buf.WriteByte(colon)
	e.buf.WriteByte('\n')

	for _, el := range elems {
		e.emitListItem(el, depth+1, delim)
	}
}

// emitListItem writes one "- " line. When the item is an object, its first
// field shares the hyphen line; remaining fields indent one level deeper.
// When the item is itself an array or tabular array, its header also shares
// the hyphen line and its body indents one level deeper. A bare "-" denotes
// an empty object.
func (e *emitter) emitListItem(id NodeId, depth int, delim byte) {
	n := e.a.get(id)
	indent := e.indentFor(depth)

	switch n.kind {
	case kindObject:
		keys := e.a.objectKeys(n)
		vals := e.a.objectVals(n)
		if len(keys) == 0 {
			e.buf.WriteString(indent)
			e.buf.WriteString(dashLiteral)
			e.buf.WriteByte('\n')
			return
		}
		e.buf.WriteString(indent)
		e.buf.WriteString(listItemPrefix)
		e.emitListItemField(e.a.keyName(keys[0]), vals[0], depth, delim, true)
		for i := 1; i < len(keys); i++ {
			e.emitField([]string{e.a.keyName(keys[i])}, vals[i], depth+1, delim)
		}
	case kindTabular:
		e.writeTabularHeaderAndBody(listItemPrefix, id, depth, delim)
	case kindArray:
		e.writeArrayHeaderAndBody(listItemPrefix, id, depth, delim, false)
	default:
		e.buf.WriteString(indent)
		e.buf.WriteString(listItemPrefix)
		e.buf.WriteString(e.scalarText(id, delim))
		e.buf.WriteByte('\n')
	}
}

const dashLiteral = "-"

// emitListItemField writes the first field of a list-item object sharing
// the hyphen line. The indentation has already been written by the caller.
func (e *emitter) emitListItemField(key string, id NodeId, depth int, delim byte, sharedLine bool) {
	safeKey := quoteKeyText(key, delim)
	n := e.a.get(id)
	switch n.kind {
	case kindArray:
		e.buf.WriteString(safeKey)
		e.writeArrayHeaderAndBody("", id, 0, delim, false)
	case kindTabular:
		e.buf.WriteString(safeKey)
		e.writeTabularHeaderAndBody("", id, 0, delim)
	case kindObject:
		e.buf.WriteString(safeKey)
		if n.childLen == 0 {
			e.buf.WriteString(":\n")
			return
		}
		e.buf.WriteString(":\n")
		e.emitObjectBody(id, depth+1, delim)
	default:
		e.buf.WriteString(safeKey)
		e.buf.WriteString(": ")
		e.buf.WriteString(e.scalarText(id, delim))
		e.buf.WriteByte('\n')
	}
}

// writeTabularHeaderAndBody writes a tabular array's header line plus one
// row per line at depth+1.
func (e *emitter) writeTabularHeaderAndBody(keyPrefix string, id NodeId, depth int, delim byte) {
	n := e.a.get(id)
	fields := e.a.tabularFields(n)
	rows := e.a.tabularRows(n)
	fieldCount := len(fields)
	rowCount := 0
	if fieldCount > 0 {
		rowCount = len(rows) / fieldCount
	}

	e.buf.WriteString(e.indentFor(depth))
	e.buf.WriteString(keyPrefix)
	e.buf.WriteByte(openBracket)
	e.buf.WriteString(strconv.Itoa(rowCount))
	if delim != defaultDelimiter {
		e.buf.WriteByte(delim)
	}
	e.buf.WriteByte(closeBracket)
	e.buf.WriteByte(openBrace)
	for i, f := range fields {
		if i > 0 {
			e.buf.WriteByte(delim)
		}
		e.buf.WriteString(quoteKeyText(e.a.keyName(f), delim))
	}
	e.buf.WriteByte(closeBrace)
	e.buf.WriteByte(colon)
	e.buf.WriteByte('\n')

	rowIndent := e.indentFor(depth + 1)
	if e.opts.Parallel && rowCount >= tabularMinRows() {
		e.buf.WriteString(e.emitTabularRowsParallel(n, delim, rowIndent))
		return
	}
	for r := 0; r < rowCount; r++ {
		e.buf.WriteString(rowIndent)
		base := r * fieldCount
		for c := 0; c < fieldCount; c++ {
			if c > 0 {
				e.buf.WriteByte(delim)
			}
			e.buf.WriteString(e.scalarText(rows[base+c], delim))
		}
		e.buf.WriteByte('\n')
	}
}

func (e *emitter) emitScalarLine(id NodeId, delim byte) {
	e.buf.WriteString(e.scalarText(id, delim))
	e.buf.WriteByte('\n')
}

// scalarText renders a scalar node's canonical textual form under delim,
// quoting strings where necessary.
func (e *emitter) scalarText(id NodeId, delim byte) string {
	n := e.a.get(id)
	switch n.kind {
	case kindNull:
		return nullLiteral
	case kindBool:
		if n.boolVal {
			return trueLiteral
		}
		return falseLiteral
	case kindInt:
		return formatNumberInt(n.intVal)
	case kindFloat:
		return formatNumberFloat(n.floatVal)
	case kindNumText:
		return n.text
	case kindStr:
		return quoteValue(n.text, delim)
	default:
		return nullLiteral
	}
}
