package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		delim byte
		want  bool
	}{
		{"empty", "", ',', true},
		{"literal null", "null", ',', true},
		{"literal true", "true", ',', true},
		{"numeric looking", "42", ',', true},
		{"leading space", " x", ',', true},
		{"trailing space", "x ", ',', true},
		{"leading dash", "-x", ',', true},
		{"bare dash", "-", ',', true},
		{"contains colon", "a:b", ',', true},
		{"contains active delimiter", "a,b", ',', true},
		{"contains pipe but comma active", "a|b", ',', false},
		{"plain word", "hello", ',', false},
		{"plain word with pipe delimiter unaffected", "hello", '|', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, needsQuoting(tt.s, tt.delim))
		})
	}
}

func TestQuoteAndEscapeRoundTrip(t *testing.T) {
	tests := []string{
		`simple`,
		"has\nnewline",
		"has\ttab",
		`has "quotes"`,
		`has\backslash`,
	}
	for _, s := range tests {
		quoted := quoteAndEscape(s)
		assert.True(t, len(quoted) >= 2)
		assert.Equal(t, byte(doubleQuote), quoted[0])
		assert.Equal(t, byte(doubleQuote), quoted[len(quoted)-1])

		back, err := unescapeQuoted(quoted[1 : len(quoted)-1])
		assert.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

func TestSafeBareKey(t *testing.T) {
	assert.True(t, safeBareKey("name", ','))
	assert.True(t, safeBareKey("a.b.c", ','))
	assert.True(t, safeBareKey("_private", ','))
	assert.False(t, safeBareKey("2cool", ','))
	assert.False(t, safeBareKey("has space", ','))
	assert.False(t, safeBareKey("", ','))
}
