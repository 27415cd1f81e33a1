package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blockfallFile = "blockfall.yaml"

// SourceEmbedded names the built-in configuration in Loaded.Source.
const SourceEmbedded = "embedded"

// Loaded is a validated configuration and the place it came from.
type Loaded struct {
	Config BlockfallConfig
	Source string // File path, or SourceEmbedded
}

// LoadBlockfall loads and validates the game configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadBlockfall(customPath string) (Loaded, error) {
	// A custom path must exist
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Loaded{}, err
		}
		return validated(cfg, customPath)
	}

	candidates := []string{filepath.Join("configs", blockfallFile)}
	if userCfgPath := userConfigPath(blockfallFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Loaded{}, err
		}
		return validated(cfg, path)
	}

	// Use embedded default YAML
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(defaultBlockfallYAML, &cfg); err != nil {
		cfg = DefaultBlockfallConfig() // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg BlockfallConfig) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserConfigFile returns the per-user config path, or "" if there is no home directory.
func UserConfigFile() string {
	return userConfigPath(blockfallFile)
}

func loadFile(path string) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func validated(cfg BlockfallConfig, source string) (Loaded, error) {
	if err := cfg.Validate(); err != nil {
		return Loaded{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return Loaded{Config: cfg, Source: source}, nil
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
