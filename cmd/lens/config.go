package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig holds optional CLI defaults read from the config file.
// Flags and LENS_* environment variables take precedence over it.
type fileConfig struct {
	Server string `toml:"server"`
	Token  string `toml:"token"`
	User   string `toml:"user"`
}

// configPath returns the location of the CLI config file.
func configPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lens", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lens", "config.toml")
}

// loadFileConfig reads the config file if present. A missing or unreadable
// file just yields empty defaults.
func loadFileConfig() *fileConfig {
	cfg := &fileConfig{}
	path := configPath()
	if path == "" {
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return &fileConfig{}
	}
	return cfg
}
