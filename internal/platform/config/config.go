package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds process-level settings. Values come from an optional YAML
// file, then environment variables override whatever the file set.
type Config struct {
	DBPath string `yaml:"db_path" env:"COURTSIDE_DB"`
	User   string `yaml:"user" env:"COURTSIDE_USER"`
}

// Load reads the YAML file at path when it exists and applies env overrides.
// An empty path skips the file stage entirely.
func Load(path string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "courtside.db"),
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// optional file
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("db path is required")
	}
	return cfg, nil
}
