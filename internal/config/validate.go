package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/strycore/dojo-20130708/morse"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"json", "console"}
	outputFormats = []string{"text", "json", "yaml"}
)

// Validate checks the loaded configuration and fills derived fields.
// Enumerated values are matched case-insensitively and stored lower-cased.
// Load calls it automatically; callers that change fields afterwards
// should call it again.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Decode.validate(); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if !slices.Contains(logLevels, l.Level) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	if !slices.Contains(logFormats, l.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	if l.File != "" && l.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 (got %d)", l.MaxSizeMB)
	}
	if l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		return fmt.Errorf("max_backups and max_age_days must be >= 0")
	}
	return nil
}

func (d *DecodeConfig) validate() error {
	if d.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", d.Limit)
	}
	if d.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", d.Workers)
	}
	d.Format = strings.ToLower(strings.TrimSpace(d.Format))
	if !slices.Contains(outputFormats, d.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", outputFormats, d.Format)
	}

	d.OrderRaw = strings.ToLower(strings.TrimSpace(d.OrderRaw))
	order, err := morse.ParseOrder(d.OrderRaw)
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	d.Order = order

	return nil
}
