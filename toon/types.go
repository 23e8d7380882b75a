// Package toon implements encoding and decoding between Go values and TOON
// (Token-Oriented Object Notation), a textual serialization that carries the
// JSON data model but trades brace/bracket noise for indentation, explicit
// array lengths, and a tabular block form for uniform arrays of flat objects.
//
// The public surface is small:
//
//	toon.Marshal(v, WithIndent(2))
//	toon.Unmarshal(data, WithExpandPaths(toon.ExpandPathsSafe))
//
// Both directions share a single internal representation, an arena of
// immutable node records addressed by dense integer ids (see arena.go). On
// encode, a Go value is normalized and built into an arena, the tabular
// detector converts eligible arrays in place, and the emitter walks the
// arena writing canonical bytes. On decode, a preflight scan produces a line
// tape, the parser builds an arena directly from it, and the result is
// materialized into ordinary Go values for the caller.
package toon

// Value is any TOON-encodable value: nil, bool, int64, float64, string,
// []Value, or *OrderedMap (an ordered string-keyed map).
type Value = any

// KeyMode controls how decoded object keys are represented. StringKeys is
// presently the only mode; it exists so the decode option set can grow
// without an API break.
type KeyMode int

const (
	StringKeys KeyMode = iota
)

// ExpandPaths controls whether dotted decode keys are expanded into nested
// objects.
type ExpandPaths int

const (
	ExpandPathsOff ExpandPaths = iota
	ExpandPathsSafe
)

// KeyFolding controls whether single-key object chains collapse into dotted
// keys during encoding.
type KeyFolding int

const (
	KeyFoldingOff KeyFolding = iota
	KeyFoldingSafe
)

// arrayFormat is the emitted shape chosen for an array by the emitter.
type arrayFormat int

const (
	formatEmpty arrayFormat = iota
	formatInline
	formatTabular
	formatList
)
