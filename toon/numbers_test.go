package toon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberInt(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0"},
		{"positive", 42, "42"},
		{"negative", -7, "-7"},
		{"large", 9007199254740993, "9007199254740993"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumberInt(tt.in))
		})
	}
}

func TestFormatNumberFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integral", 37.0, "37"},
		{"trailing zeros trimmed", 3.140, "3.14"},
		{"nan", math.NaN(), "null"},
		{"inf", math.Inf(1), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumberFloat(tt.in))
		})
	}
}

func TestLooksNumeric(t *testing.T) {
	yes := []string{"0", "-0", "42", "-42", "3.14", "1e10", "-1.5e-10", "007"}
	no := []string{"", "abc", "-", "1.2.3", "1e", "+-1", "NaN"}
	for _, s := range yes {
		assert.Truef(t, looksNumeric(s), "expected %q to look numeric", s)
	}
	for _, s := range no {
		assert.Falsef(t, looksNumeric(s), "expected %q to not look numeric", s)
	}
}

func TestParseNumberLexeme(t *testing.T) {
	v, err := parseNumberLexeme("42")
	require.Nil(t, err)
	assert.Equal(t, int64(42), v)

	v, err = parseNumberLexeme("3.14")
	require.Nil(t, err)
	assert.Equal(t, 3.14, v)

	_, err = parseNumberLexeme("007")
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}
