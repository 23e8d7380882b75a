package toon

// Structural bytes of the TOON grammar.
const (
	colon        = ':'
	comma        = ','
	pipeDelim    = '|'
	tabDelim     = '\t'
	space        = ' '
	newline      = '\n'
	openBracket  = '['
	closeBracket = ']'
	openBrace    = '{'
	closeBrace   = '}'
	doubleQuote  = '"'
	backslash    = '\\'
	dash         = '-'
	dot          = '.'
)

const (
	listItemPrefix = "- "

	nullLiteral  = "null"
	trueLiteral  = "true"
	falseLiteral = "false"

	defaultIndent    = 2
	defaultDelimiter = comma
)

// validDelimiters enumerates the delimiters a header may declare.
var validDelimiters = [...]byte{comma, tabDelim, pipeDelim}

func isValidDelimiter(d byte) bool {
	for _, v := range validDelimiters {
		if v == d {
			return true
		}
	}
	return false
}

// structureChars forces quoting of any string value or key containing them,
// independent of the active delimiter.
var structureChars = [...]byte{colon, doubleQuote, backslash, openBracket, closeBracket, openBrace, closeBrace}

func containsStructureChar(s string) bool {
	for i := 0; i < len(s); i++ {
		for _, c := range structureChars {
			if s[i] == c {
				return true
			}
		}
	}
	return false
}

func isControlByte(b byte) bool {
	return b < 0x20 || b == 0x7F
}
