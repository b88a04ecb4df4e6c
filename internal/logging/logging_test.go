package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/strycore/dojo-20130708/internal/config"
)

func TestNewWithSyncer_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithSyncer(config.LogConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))

	logger.Info("decoded", zap.Int("segmentations", 4))
	require.NoError(t, logger.Sync())

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "JSON encoder should produce valid JSON")
	assert.Equal(t, "decoded", m["msg"])
	assert.Equal(t, "info", m["level"])
	assert.EqualValues(t, 4, m["segmentations"])
}

func TestNewWithSyncer_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithSyncer(config.LogConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))

	logger.Debug("console test", zap.String("input", ".-"))

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "console test")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "console output should not be JSON")
}

func TestNewWithSyncer_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithSyncer(config.LogConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "morse.log")
	var fallback bytes.Buffer
	logger, closeFn := New(config.LogConfig{
		Level:     "info",
		Format:    "json",
		File:      path,
		MaxSizeMB: 1,
	}, &fallback)

	logger.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Empty(t, fallback.String())
}

func TestNew_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("to writer")
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), `"msg":"to writer"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" DEBUG ", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}
