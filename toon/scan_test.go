package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLinesRejectsTabIndentation(t *testing.T) {
	_, err := scanLines("a: 1\n\tb: 2\n", 2)
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestScanLinesRejectsTrailingWhitespace(t *testing.T) {
	_, err := scanLines("a: 1 \n", 2)
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestScanLinesRejectsCarriageReturn(t *testing.T) {
	_, err := scanLines("a: 1\r\n", 2)
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestScanLinesRejectsOddIndent(t *testing.T) {
	_, err := scanLines("a:\n   b: 1\n", 2)
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestScanLinesTrimsTrailingNewline(t *testing.T) {
	lines, err := scanLines("a: 1\n", 2)
	require.Nil(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "a: 1", lines[0].raw)
}

func TestScanLinesTracksDepth(t *testing.T) {
	lines, err := scanLines("a:\n  b: 1\n    c: 2\n", 2)
	require.Nil(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, 0, lines[0].depth(2))
	assert.Equal(t, 1, lines[1].depth(2))
	assert.Equal(t, 2, lines[2].depth(2))
}
