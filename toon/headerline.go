package toon

import "strconv"

// headerLine is the parsed shape of one non-blank, non-list-item line's
// body (indentation already stripped): an optional key, an optional array
// length + delimiter, an optional tabular field list, and an optional
// inline value region following a ": ".
type headerLine struct {
	key       string
	hasKey    bool
	length    int
	hasLength bool
	delim     byte
	fields    []string
	hasFields bool
	value     string
	hasValue  bool
	isScalarRoot bool // no key, no brackets: the whole body is a scalar value
}

// parseHeaderLine tokenizes one line body. It returns a Syntax error for
// malformed brackets, missing colon, or bad delimiter declarations.
func parseHeaderLine(body string, line *lineSpan) (headerLine, *DecodeError) {
	var h headerLine
	pos := 0
	n := len(body)

	if n == 0 {
		return h, syntaxErr(line, "empty line where content was expected")
	}

	if body[0] != openBracket {
		key, newPos, hasColonOrBracketAhead, err := scanKeyOrScalar(body, line)
		if err != nil {
			return h, err
		}
		if !hasColonOrBracketAhead {
			h.isScalarRoot = true
			h.value = body
			h.hasValue = true
			return h, nil
		}
		h.key = key
		h.hasKey = true
		pos = newPos
	}

	if pos < n && body[pos] == openBracket {
		end := indexByte(body, pos, closeBracket)
		if end < 0 {
			return h, syntaxErr(line, "unterminated '[' in header")
		}
		inner := body[pos+1 : end]
		h.delim = defaultDelimiter
		if len(inner) > 0 {
			last := inner[len(inner)-1]
			if !isDigit(last) {
				if !isValidDelimiter(last) {
					return h, syntaxErr(line, "invalid delimiter in header")
				}
				h.delim = last
				inner = inner[:len(inner)-1]
			}
		}
		length, convErr := strconv.Atoi(inner)
		if convErr != nil {
			return h, syntaxErr(line, "invalid length in '[...]' header")
		}
		h.length = length
		h.hasLength = true
		pos = end + 1
	}

	if pos < n && body[pos] == openBrace {
		end := indexByte(body, pos, closeBrace)
		if end < 0 {
			return h, syntaxErr(line, "unterminated '{' in header")
		}
		inner := body[pos+1 : end]
		fields, ferr := splitFields(inner, h.delim, line)
		if ferr != nil {
			return h, ferr
		}
		h.fields = fields
		h.hasFields = true
		pos = end + 1
	}

	if pos >= n || body[pos] != colon {
		return h, syntaxErr(line, "expected ':' after key/header")
	}
	pos++

	if pos < n {
		if body[pos] != space {
			return h, syntaxErr(line, "expected single space after ':'")
		}
		pos++
		if pos < n {
			h.value = body[pos:]
			h.hasValue = true
		}
	}
	return h, nil
}

// scanKeyOrScalar reads a (possibly quoted) key from the start of body and
// reports whether a '[' or ':' follows it (meaning it really is a key)
// versus the line being a bare scalar with no key at all.
func scanKeyOrScalar(body string, line *lineSpan) (string, int, bool, *DecodeError) {
	if body[0] == doubleQuote {
		end, derr := findClosingQuote(body, 0)
		if derr != nil {
			return "", 0, false, syntaxErr(line, derr.Error())
		}
		key, uerr := unescapeQuoted(body[1:end])
		if uerr != nil {
			return "", 0, false, syntaxErr(line, uerr.Error())
		}
		pos := end + 1
		if pos < len(body) && (body[pos] == colon || body[pos] == openBracket || body[pos] == openBrace) {
			return key, pos, true, nil
		}
		return "", 0, false, nil
	}

	pos := 0
	for pos < len(body) && (isIdentCont(body[pos]) || body[pos] == dot) {
		pos++
	}
	if pos == 0 {
		return "", 0, false, nil
	}
	if pos < len(body) && (body[pos] == colon || body[pos] == openBracket || body[pos] == openBrace) {
		return body[:pos], pos, true, nil
	}
	return "", 0, false, nil
}

func indexByte(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// findClosingQuote returns the index of the unescaped closing quote that
// matches the opening quote at body[openAt].
func findClosingQuote(body string, openAt int) (int, error) {
	for i := openAt + 1; i < len(body); i++ {
		switch body[i] {
		case backslash:
			i++
		case doubleQuote:
			return i, nil
		}
	}
	return 0, errUnterminatedQuote
}

var errUnterminatedQuote = stringErr("unterminated quoted string")

// splitFields splits a tabular field list or inline-array value region on
// delim, respecting quoted segments.
func splitFields(s string, delim byte, line *lineSpan) ([]string, *DecodeError) {
	if s == "" {
		return nil, nil
	}
	var out []string
	i := 0
	for i < len(s) {
		start := i
		if s[i] == doubleQuote {
			end, err := findClosingQuote(s, i)
			if err != nil {
				return nil, syntaxErr(line, err.Error())
			}
			i = end + 1
		}
		for i < len(s) && s[i] != delim {
			if s[i] == doubleQuote {
				end, err := findClosingQuote(s, i)
				if err != nil {
					return nil, syntaxErr(line, err.Error())
				}
				i = end + 1
				continue
			}
			i++
		}
		out = append(out, s[start:i])
		if i < len(s) && s[i] == delim {
			i++
			if i == len(s) {
				out = append(out, "")
			}
		}
	}
	return out, nil
}

// parseCellToken parses one already-split cell/field/value token into a
// Value, unquoting and resolving escapes if it is a quoted string.
func parseCellToken(tok string, line *lineSpan) (Value, *DecodeError) {
	if tok == "" {
		return "", nil
	}
	if tok[0] == doubleQuote {
		if len(tok) < 2 || tok[len(tok)-1] != doubleQuote {
			return nil, syntaxErr(line, "unterminated quoted string")
		}
		s, err := unescapeQuoted(tok[1 : len(tok)-1])
		if err != nil {
			return nil, syntaxErr(line, err.Error())
		}
		return s, nil
	}
	switch tok {
	case nullLiteral:
		return nil, nil
	case trueLiteral:
		return true, nil
	case falseLiteral:
		return false, nil
	}
	if looksNumeric(tok) {
		return parseNumberLexeme(tok)
	}
	return tok, nil
}
