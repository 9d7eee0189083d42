package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file checked after the user file.
const LocalPath = "configs/2048.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.2048/config.yaml -> ./configs/2048.yaml -> embedded default.
// Files are applied on top of the embedded default, so they only need the
// fields they change. A customPath that cannot be read or parsed is an error;
// the other locations are skipped when missing or broken.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Parse decodes YAML on top of the embedded default and validates the result.
// Schemes are merged by name: a file scheme replaces the built-in one with
// the same name and new names are appended.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	builtin := cfg.Schemes
	cfg.Schemes = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Schemes = mergeSchemes(builtin, cfg.Schemes)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".2048", "config.yaml")
}

func mergeSchemes(base, override []Scheme) []Scheme {
	merged := make([]Scheme, len(base), len(base)+len(override))
	copy(merged, base)

	for _, s := range override {
		replaced := false
		for i := range merged {
			if merged[i].Name == s.Name {
				merged[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, s)
		}
	}
	return merged
}
