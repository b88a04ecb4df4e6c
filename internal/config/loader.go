package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no path is given and the file exists.
const DefaultPath = "./morse.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
// An explicit path must exist. With an empty path, DefaultPath is used when
// present; otherwise configuration comes from ENV + defaults only.
// Defaults come from Default for fields where zero is meaningful and from
// env-default tags for the rest.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
