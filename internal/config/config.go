package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the few environment knobs the tracker honors. Everything has
// a sensible default so the binary runs with no environment at all.
type Config struct {
	// DataDir overrides where the database file lives.
	DataDir string `env:"PRT_DATA_DIR"`
	// Theme selects the color theme at startup.
	Theme string `env:"PRT_THEME" envDefault:"default"`
}

// Load reads the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

// DBPath returns the full path of the database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}
