package toon

import "strings"

// lineSpan is one physical line of source, pre-measured by the preflight
// scan so the parser never re-walks raw bytes looking for indentation or
// line boundaries.
type lineSpan struct {
	number int    // 1-based
	start  int    // byte offset of the line's first byte in the source
	indent int     // number of leading spaces
	raw    string  // full line content, excluding the trailing newline
	body   string  // raw with the leading indent stripped
	blank  bool
}

// scanLines splits src into lineSpans and enforces the lexical rules the
// format depends on before any structural parsing happens: LF-only line
// endings, no tab characters in leading indentation, no trailing whitespace,
// and indentation that is a multiple of indentSize spaces. Returns the
// tape and the first violation found, if any.
func scanLines(src string, indentSize int) ([]lineSpan, *DecodeError) {
	if strings.IndexByte(src, '\r') >= 0 {
		return nil, &DecodeError{Kind: KindSyntax, Message: "carriage return not allowed; TOON requires LF line endings"}
	}

	// A single trailing newline is tolerated and stripped; anything else
	// about trailing blank lines is left to the caller via lenient mode.
	src = strings.TrimSuffix(src, "\n")

	lines := make([]lineSpan, 0, strings.Count(src, "\n")+1)
	offset := 0
	lineNo := 0
	for {
		lineNo++
		nl := strings.IndexByte(src[offset:], '\n')
		var raw string
		var lineEnd int
		if nl < 0 {
			raw = src[offset:]
			lineEnd = len(src)
		} else {
			raw = src[offset : offset+nl]
			lineEnd = offset + nl
		}

		ls := lineSpan{number: lineNo, start: offset, raw: raw}

		if strings.TrimRight(raw, " \t") != raw {
			return nil, &DecodeError{Kind: KindSyntax, Message: "trailing whitespace", Line: lineNo, Offset: offset, Context: raw}
		}

		leading := len(raw) - len(strings.TrimLeft(raw, " \t"))
		if strings.IndexByte(raw[:leading], '\t') >= 0 {
			return nil, &DecodeError{Kind: KindSyntax, Message: "tab character in indentation", Line: lineNo, Offset: offset, Context: raw}
		}
		trimmed := strings.TrimLeft(raw, " ")
		indent := len(raw) - len(trimmed)
		if indentSize > 0 && indent%indentSize != 0 {
			return nil, &DecodeError{Kind: KindSyntax, Message: "indentation is not a multiple of the configured indent size", Line: lineNo, Offset: offset, Context: raw}
		}

		ls.indent = indent
		ls.body = trimmed
		ls.blank = trimmed == ""
		lines = append(lines, ls)

		if nl < 0 {
			break
		}
		offset = lineEnd + 1
		if offset > len(src) {
			break
		}
	}
	return lines, nil
}

// depth reports the indentation level of a line relative to indentSize.
func (l lineSpan) depth(indentSize int) int {
	if indentSize <= 0 {
		return 0
	}
	return l.indent / indentSize
}
