// Package logging builds the zap logger used by the morse command.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/strycore/dojo-20130708/internal/config"
)

// New creates a *zap.Logger based on the provided LogConfig.
//
// Format "json" produces structured JSON output (production).
// Format "console" produces human-readable output (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output goes to a size-rotated file when cfg.File is set, otherwise to w
// (usually os.Stderr).
//
// The returned close function flushes the logger and releases the file.
func New(cfg config.LogConfig, w io.Writer) (*zap.Logger, func() error) {
	var ws zapcore.WriteSyncer
	var rotator *lumberjack.Logger
	if cfg.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		}
		ws = zapcore.AddSync(rotator)
	} else {
		ws = zapcore.Lock(zapcore.AddSync(w))
	}

	logger := NewWithSyncer(cfg, ws)
	closeFn := func() error {
		// Sync on stderr fails on some platforms; the error carries no information.
		_ = logger.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return logger, closeFn
}

// NewWithSyncer is New with an explicit destination.
func NewWithSyncer(cfg config.LogConfig, ws zapcore.WriteSyncer) *zap.Logger {
	var enc zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(enc, ws, parseLevel(cfg.Level))
	return zap.New(core, zap.AddCaller())
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
