package toon

import (
	"fmt"
	"io"
)

// Version is the semantic version of this codec's public contract.
const Version = "1.0.0"

// Marshal encodes v as TOON text and returns the bytes.
func Marshal(v Value, opts ...EncodeOption) ([]byte, error) {
	s, err := MarshalToString(v, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalToString encodes v as TOON text.
func MarshalToString(v Value, opts ...EncodeOption) (string, error) {
	o := buildEncodeOptions(opts)
	if !isValidDelimiter(o.Delimiter) {
		return "", &EncodeError{Message: fmt.Sprintf("invalid delimiter %q", o.Delimiter)}
	}

	a := getArena()
	defer putArena(a)

	root, err := buildNode(a, v)
	if err != nil {
		return "", err
	}
	detectTabularRecursive(a, root)

	e := newEmitter(a, o)
	return e.emitDocument(root), nil
}

// MarshalTo encodes v as TOON text and writes it to w in a single call.
func MarshalTo(w io.Writer, v Value, opts ...EncodeOption) error {
	s, err := MarshalToString(v, opts...)
	if err != nil {
		return err
	}
	_, werr := io.WriteString(w, s)
	if werr != nil {
		return &EncodeError{Message: "write failed", Cause: werr}
	}
	return nil
}

// Unmarshal decodes TOON bytes into a Value.
func Unmarshal(data []byte, opts ...DecodeOption) (Value, error) {
	return UnmarshalFromString(string(data), opts...)
}

// UnmarshalFromString decodes TOON text into a Value.
func UnmarshalFromString(text string, opts ...DecodeOption) (Value, error) {
	o := buildDecodeOptions(opts)
	a, id, err := decodeToNode(text, o)
	if err != nil {
		return nil, err
	}
	return materialize(a, id), nil
}

// UnmarshalFromReader reads r to completion and decodes the result.
func UnmarshalFromReader(r io.Reader, opts ...DecodeOption) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Kind: KindIO, Message: "read failed", Cause: err}
	}
	return Unmarshal(data, opts...)
}

// DecodeToValue is the fast decode path: it parses directly into the
// public Value domain without an intermediate generic-serializer step.
// It is presently equivalent to Unmarshal; the name documents the contract
// for callers that bridge to a typed generic-serializer framework, which
// may instead walk the arena directly for efficiency.
func DecodeToValue(data []byte, opts ...DecodeOption) (Value, error) {
	return Unmarshal(data, opts...)
}

// Validate runs strict-mode parsing over text and discards the result,
// reporting only whether it is well-formed TOON.
func Validate(text string, opts ...DecodeOption) error {
	o := buildDecodeOptions(opts)
	o.Strict = true
	if _, _, err := decodeToNode(text, o); err != nil {
		return err
	}
	return nil
}

// decodeToNode runs the scan + parse pipeline and returns the owning arena
// alongside the root node id; the arena is not pooled since callers may
// hold string values that reference it (Go string slicing shares the
// backing array, so materialized strings stay valid as long as the arena's
// backing source string is reachable).
func decodeToNode(text string, o DecodeOptions) (*arena, NodeId, *DecodeError) {
	lines, serr := scanLines(text, o.Indent)
	if serr != nil {
		return nil, nilNode, serr
	}
	a := newArena()
	id, perr := parseDocument(a, lines, o)
	if perr != nil {
		return nil, nilNode, perr
	}
	return a, id, nil
}
