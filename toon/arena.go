package toon

import "sync"

// NodeId addresses a node within an arena. The sentinel nilNode (-1) is never
// a valid allocated node.
type NodeId int32

// KeyId addresses an interned object key within an arena's key table.
type KeyId int32

const nilNode NodeId = -1

// nodeKind discriminates the variant stored in a node record.
type nodeKind uint8

const (
	kindNull nodeKind = iota
	kindBool
	kindInt
	kindFloat
	kindNumText // decoded numeric lexeme kept verbatim for round-trip fidelity
	kindStr
	kindArray
	kindObject
	kindTabular
)

// node is a single arena record. Only the fields relevant to kind are
// populated; the rest are zero. Children of array/object/tabular nodes are
// stored out-of-line in the arena's children / keys slices to keep this
// struct small and the arena itself a flat, cache-friendly slice.
type node struct {
	kind nodeKind

	boolVal  bool
	intVal   int64
	floatVal float64
	text     string // string value, or verbatim numeric lexeme for kindNumText

	// kindArray, kindObject: indices into arena.children / arena.keys
	childStart int
	childLen   int

	// kindObject: parallel to children, indices into arena.keys
	keyStart int

	// kindTabular: fields are the column key ids, rows are childLen/len(fields)
	// groups of scalar node ids laid out row-major in arena.children starting
	// at childStart.
	fieldStart int
	fieldLen   int
}

// arena holds every node produced while building or parsing one document.
// Strings referenced by node.text are spans into the original source (for
// decode) or into caller-owned strings (for encode) — Go's string slicing
// already shares the backing array, so no separate span/offset bookkeeping
// is needed to get zero-copy substrings.
type arena struct {
	nodes    []node
	children []NodeId
	keys     []KeyId

	internTable map[string]KeyId
	internNames []string
}

func newArena() *arena {
	return &arena{
		nodes:       make([]node, 0, 64),
		children:    make([]NodeId, 0, 128),
		keys:        make([]KeyId, 0, 32),
		internTable: make(map[string]KeyId, 32),
	}
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
	a.children = a.children[:0]
	a.keys = a.keys[:0]
	for k := range a.internTable {
		delete(a.internTable, k)
	}
	a.internNames = a.internNames[:0]
}

// intern returns the KeyId for s, allocating a new one if s has not been
// seen before in this arena.
func (a *arena) intern(s string) KeyId {
	if id, ok := a.internTable[s]; ok {
		return id
	}
	id := KeyId(len(a.internNames))
	a.internNames = append(a.internNames, s)
	a.internTable[s] = id
	return id
}

func (a *arena) keyName(id KeyId) string { return a.internNames[id] }

func (a *arena) add(n node) NodeId {
	id := NodeId(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return id
}

func (a *arena) get(id NodeId) *node { return &a.nodes[id] }

// newArray appends a kindArray node whose elements are elems, copied into
// the arena's shared children slice.
func (a *arena) newArray(elems []NodeId) NodeId {
	start := len(a.children)
	a.children = append(a.children, elems...)
	return a.add(node{kind: kindArray, childStart: start, childLen: len(elems)})
}

func (a *arena) arrayElems(n *node) []NodeId {
	return a.children[n.childStart : n.childStart+n.childLen]
}

// newObject appends a kindObject node with parallel key/value slices.
func (a *arena) newObject(keys []KeyId, vals []NodeId) NodeId {
	ks := len(a.keys)
	a.keys = append(a.keys, keys...)
	cs := len(a.children)
	a.children = append(a.children, vals...)
	return a.add(node{kind: kindObject, keyStart: ks, childStart: cs, childLen: len(vals)})
}

func (a *arena) objectKeys(n *node) []KeyId {
	return a.keys[n.keyStart : n.keyStart+n.childLen]
}

func (a *arena) objectVals(n *node) []NodeId {
	return a.children[n.childStart : n.childStart+n.childLen]
}

// newTabular appends a kindTabular node: fields are column key ids, rows is
// the row-major flattening of cell node ids (len(fields)*rowCount).
func (a *arena) newTabular(fields []KeyId, rows []NodeId) NodeId {
	fs := len(a.keys)
	a.keys = append(a.keys, fields...)
	cs := len(a.children)
	a.children = append(a.children, rows...)
	return a.add(node{kind: kindTabular, fieldStart: fs, fieldLen: len(fields), childStart: cs, childLen: len(rows)})
}

func (a *arena) tabularFields(n *node) []KeyId {
	return a.keys[n.fieldStart : n.fieldStart+n.fieldLen]
}

func (a *arena) tabularRows(n *node) []NodeId {
	return a.children[n.childStart : n.childStart+n.childLen]
}

var arenaPool = sync.Pool{New: func() any { return newArena() }}

func getArena() *arena {
	a := arenaPool.Get().(*arena)
	a.reset()
	return a
}

func putArena(a *arena) {
	if a == nil {
		return
	}
	arenaPool.Put(a)
}
