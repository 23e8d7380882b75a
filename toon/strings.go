package toon

import (
	"strings"
	"sync"
)

// quoteCacheKey pairs string content with the delimiter active when it was
// analyzed, since whether a comma or tab must force quoting depends on it.
type quoteCacheKey struct {
	s     string
	delim byte
}

var quoteCache sync.Map // quoteCacheKey -> string (already-quoted-if-needed form)

// needsQuoting reports whether s must be wrapped in double quotes to be
// written back unambiguously as a value, key, or tabular cell under delim.
func needsQuoting(s string, delim byte) bool {
	if s == "" {
		return true
	}
	if s == nullLiteral || s == trueLiteral || s == falseLiteral {
		return true
	}
	if looksNumeric(s) {
		return true
	}
	if s[0] == space || s[len(s)-1] == space {
		return true
	}
	if s[0] == dash {
		return true
	}
	if containsStructureChar(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == delim || isControlByte(c) {
			return true
		}
	}
	return false
}

// quoteValue returns s formatted for the given delimiter: quoted-and-escaped
// if necessary, otherwise returned unchanged. Results are cached per
// (content, delimiter) pair since the same strings recur heavily across
// tabular columns.
func quoteValue(s string, delim byte) string {
	key := quoteCacheKey{s, delim}
	if v, ok := quoteCache.Load(key); ok {
		return v.(string)
	}
	var out string
	if needsQuoting(s, delim) {
		out = quoteAndEscape(s)
	} else {
		out = s
	}
	quoteCache.Store(key, out)
	return out
}

// quoteAndEscape wraps s in double quotes, escaping only the restricted set
// the format allows: backslash, double quote, and the three whitespace
// control characters newline, carriage return, and tab.
func quoteAndEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(doubleQuote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case backslash:
			b.WriteString(`\\`)
		case doubleQuote:
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(doubleQuote)
	return b.String()
}

// unescapeQuoted resolves the escapes in the content of a quoted token.
// body is the content between the opening and closing quote, i.e. already
// stripped of both.
func unescapeQuoted(body string) (string, error) {
	if strings.IndexByte(body, backslash) < 0 {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != backslash {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errUnterminatedEscape
		}
		switch body[i] {
		case backslash:
			b.WriteByte(backslash)
		case doubleQuote:
			b.WriteByte(doubleQuote)
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", errInvalidEscape
		}
	}
	return b.String(), nil
}

var (
	errUnterminatedEscape = stringErr("unterminated escape sequence")
	errInvalidEscape      = stringErr("invalid escape sequence")
)

type stringErr string

func (e stringErr) Error() string { return string(e) }

// safeBareKey reports whether key can be written without quotes as an
// object key: it must match ^[A-Za-z_][A-Za-z0-9_.]*$ per §4.1.
func safeBareKey(key string, _ byte) bool {
	return dottedKeyPattern(key)
}
