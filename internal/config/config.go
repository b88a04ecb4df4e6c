package config

import "github.com/strycore/dojo-20130708/morse"

// Config is the root configuration of the morse command.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Decode DecodeConfig `yaml:"decode"`
}

// Default returns the built-in values of the fields where zero is a valid
// setting. cleanenv would overwrite an explicit zero with an env-default, so
// these defaults are filled before the YAML and environment are read.
func Default() Config {
	return Config{
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Decode: DecodeConfig{
			Limit:   100000,
			Workers: 4,
		},
	}
}

// LogConfig holds logger settings. An empty File logs to stderr; otherwise
// the file is rotated by size.
type LogConfig struct {
	Level      string `yaml:"level"        env:"MORSE_LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"MORSE_LOG_FORMAT"       env-default:"console"`
	File       string `yaml:"file"         env:"MORSE_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"MORSE_LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups"  env:"MORSE_LOG_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"MORSE_LOG_MAX_AGE_DAYS"`
	Compress   bool   `yaml:"compress"     env:"MORSE_LOG_COMPRESS"`
}

// DecodeConfig holds defaults for the decode command. Flags override them.
type DecodeConfig struct {
	Limit     int    `yaml:"limit"     env:"MORSE_DECODE_LIMIT"`
	OrderRaw  string `yaml:"order"     env:"MORSE_DECODE_ORDER"     env-default:"lexical"`
	Normalize bool   `yaml:"normalize" env:"MORSE_DECODE_NORMALIZE"`
	Workers   int    `yaml:"workers"   env:"MORSE_DECODE_WORKERS"`
	Format    string `yaml:"format"    env:"MORSE_DECODE_FORMAT"    env-default:"text"`

	// Order is parsed from OrderRaw during validation.
	Order morse.Order `yaml:"-" env:"-"`
}
