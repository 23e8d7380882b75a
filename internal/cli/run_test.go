package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAutoDetectEncode(t *testing.T) {
	cfg := NewConfig()
	var out bytes.Buffer
	err := Run(cfg, "-", strings.NewReader(`{"name":"Ada","age":37}`), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\nage: 37\n", out.String())
}

func TestRunAutoDetectDecode(t *testing.T) {
	cfg := NewConfig()
	var out bytes.Buffer
	err := Run(cfg, "-", strings.NewReader("name: Margaret\nage: 32\n"), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Margaret\",\n  \"age\": 32\n}\n", out.String())
}

func TestRunForcedEncode(t *testing.T) {
	cfg := NewConfig()
	cfg.Encode = true
	var out bytes.Buffer
	err := Run(cfg, "-", strings.NewReader(`[1,2,3]`), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "[3]: 1,2,3\n", out.String())
}

func TestRunEmptyInputEncode(t *testing.T) {
	cfg := NewConfig()
	cfg.Encode = true
	var out bytes.Buffer
	err := Run(cfg, "-", strings.NewReader(""), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "", out.String())
}

func TestRunInvalidDelimiter(t *testing.T) {
	cfg := NewConfig()
	cfg.Delimiter = "x"
	var out bytes.Buffer
	err := Run(cfg, "-", strings.NewReader("a: 1\n"), &out, &bytes.Buffer{})
	assert.Error(t, err)
}
