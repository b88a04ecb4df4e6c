package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/strycore/dojo-20130708/morse"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"morse"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDecodeArgs(t *testing.T) {
	out, _, err := run(t, "", "decode", ".-", ".-.")
	require.NoError(t, err)
	assert.Equal(t, ".-\ta et\n.-.\tae en ete r\n", out)
}

func TestDecodeStdin(t *testing.T) {
	out, _, err := run(t, ".\r\n\n-\n", "decode")
	require.NoError(t, err)
	assert.Equal(t, ".\te\n-\tt\n", out)
}

func TestDecodeOrderAndWorkers(t *testing.T) {
	inputs := []string{"....", ".-", "----", ".-.", "-.-.", "..--"}
	out, _, err := run(t, "", append([]string{"decode", "--order", "length", "--workers", "3", "--"}, inputs...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(inputs))
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, inputs[i]+"\t"), "line %d = %q", i, line)
	}
	assert.Equal(t, ".-.\tr ae en ete", lines[3])
}

func TestDecodeJSON(t *testing.T) {
	out, _, err := run(t, "", "decode", "--format", "json", ".-")
	require.NoError(t, err)

	var got []struct {
		Input         string   `json:"input"`
		Count         int      `json:"count"`
		Segmentations []string `json:"segmentations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, ".-", got[0].Input)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, []string{"a", "et"}, got[0].Segmentations)
}

func TestDecodeYAML(t *testing.T) {
	out, _, err := run(t, "", "decode", "--format", "yaml", "..")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "..", got[0]["input"])
	assert.Equal(t, 2, got[0]["count"])
	assert.Equal(t, []any{"ee", "i"}, got[0]["segmentations"])
}

func TestDecodeNormalize(t *testing.T) {
	_, _, err := run(t, "", "decode", "·−")
	require.Error(t, err)

	out, _, err := run(t, "", "decode", "--normalize", "·−")
	require.NoError(t, err)
	assert.Equal(t, "·−\ta et\n", out)
}

func TestDecodeMalformedLogsCode(t *testing.T) {
	out, stderr, err := run(t, "", "--log-format", "json", "decode", ".-", ".x-")
	require.Error(t, err)
	assert.ErrorIs(t, err, morse.ErrMalformedInput)
	assert.Empty(t, out)
	assert.Contains(t, stderr, `"code":"malformed"`)
	assert.Contains(t, stderr, `"run_id"`)
}

func TestDecodeLimit(t *testing.T) {
	_, stderr, err := run(t, "", "--log-format", "json", "decode", "--limit", "100", "...---...")
	require.Error(t, err)
	assert.Contains(t, stderr, `"code":"limit"`)
}

func TestDecodeInvalidFlag(t *testing.T) {
	_, _, err := run(t, "", "decode", "--format", "csv", ".")
	require.Error(t, err)

	_, _, err = run(t, "", "decode", "--workers", "0", ".")
	require.Error(t, err)
}

func TestDecodeAllPreservesOrder(t *testing.T) {
	inputs := []string{"-", ".", "--", ".."}
	results, err := decodeAll(context.Background(), morse.New(), inputs, 2)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input)
	}
	assert.Equal(t, 2, results[3].Count)
}

func TestEncode(t *testing.T) {
	out, _, err := run(t, "", "encode", "sos", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "...---...\n......-...-..---\n", out)

	_, _, err = run(t, "", "encode", "r2d2")
	assert.ErrorIs(t, err, morse.ErrUnknownLetter)
}

func TestCount(t *testing.T) {
	out, _, err := run(t, "", "count", "...---...", strings.Repeat(".", 100))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "...---...\t192", lines[0])
	assert.Greater(t, len(lines[1]), 100+20)
}

func TestTable(t *testing.T) {
	out, _, err := run(t, "", "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, "a  .-", lines[0])
	assert.Equal(t, "z  --..", lines[25])
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decode:\n  order: length\n  format: json\n"), 0o644))

	out, _, err := run(t, "", "--config", path, "decode", ".-.")
	require.NoError(t, err)
	assert.Contains(t, out, `"input": ".-."`)
	assert.Less(t, strings.Index(out, `"r"`), strings.Index(out, `"ae"`))
}

func TestConfigMissing(t *testing.T) {
	_, stderr, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "table")
	require.Error(t, err)
	assert.Contains(t, stderr, "config: file")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.log")
	_, stderr, err := run(t, "", "--log-file", path, "--log-format", "json", "decode", ".-")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"decode finished"`)
}

func TestLogsToErrWriter(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "--log-format", "json", "decode", ".")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"starting"`)
	assert.Contains(t, stderr, `"msg":"decode finished"`)
}

func TestConfigZeroLimitMeansUnlimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decode:\n  limit: 0\n"), 0o644))

	out, _, err := run(t, "", "--config", path, "decode", "--format", "json", "...---...")
	require.NoError(t, err)
	assert.Contains(t, out, `"count": 192`)
}

func TestConfigUpperCaseFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decode:\n  format: JSON\n"), 0o644))

	out, _, err := run(t, "", "--config", path, "decode", ".-")
	require.NoError(t, err)
	assert.Contains(t, out, `"input": ".-"`)
}
