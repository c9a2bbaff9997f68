package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded"

// searchNames lists the file names tried in each config directory, in order.
var searchNames = []string{"breakout.yaml", "breakout.yml", "breakout.toml"}

// LoadBreakout loads Breakout configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/breakout.{yaml,yml,toml} ->
// ./configs/breakout.{yaml,yml,toml} -> embedded default.
// Fields missing from a file keep their default values. Only an explicit
// customPath can produce an error; unreadable files found by the search are
// skipped.
func LoadBreakout(customPath string) (BreakoutConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	var candidates []string
	if dir := userConfigDir(); dir != "" {
		for _, name := range searchNames {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	for _, name := range searchNames {
		candidates = append(candidates, filepath.Join("configs", name))
	}

	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads, decodes and validates one config file.
func loadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, choosing TOML for ".toml" paths and YAML
// for everything else.
func Decode(path string, data []byte, cfg *BreakoutConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse TOML %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse YAML %s: %w", path, err)
	}
	return nil
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
