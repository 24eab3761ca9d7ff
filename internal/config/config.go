// Package config loads the optional configuration file and environment
// overrides. Flags still win; the merge happens in the root command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the few settings this tool has. Synthetic selects the
// offline implementations instead of the live SAP ones; the selection is
// made once at startup and never mixed afterwards.
type Config struct {
	Synthetic bool   `yaml:"synthetic"`
	Format    string `yaml:"format"`
	Verbose   bool   `yaml:"verbose"`
}

// EnvSynthetic and EnvFormat override the file without touching flags.
const (
	EnvSynthetic = "SAPHR_SYNTHETIC"
	EnvFormat    = "SAPHR_FORMAT"
)

// Path returns the config file location, honoring SAPHR_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("SAPHR_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sap-hr-cli", "config.yaml"), nil
}

// Load reads the config file if present and applies env overrides. A
// missing file is not an error.
func Load() (Config, error) {
	var cfg Config

	path, err := Path()
	if err == nil {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if v := os.Getenv(EnvSynthetic); v == "1" || v == "true" {
		cfg.Synthetic = true
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	return cfg, nil
}
