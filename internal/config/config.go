package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents lineage configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Input   InputConfig   `json:"input"`
}

// DisplayConfig controls how forests are printed
type DisplayConfig struct {
	Color  bool `json:"color"`
	Digest bool `json:"digest"`
}

// InputConfig names where edges come from when no file is given
type InputConfig struct {
	File string `json:"file,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:  true,
			Digest: false,
		},
		Input: InputConfig{
			File: os.Getenv("LINEAGE_FILE"),
		},
	}
}

// globalConfigPath returns the path to the global config file
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".lineageconfig"), nil
}

// localConfigPath returns the path to the working-directory config file
func localConfigPath() string {
	return filepath.Join(".lineage", "config")
}

// readConfig parses path into a Config. ok is false if the file is missing
// or unreadable.
func readConfig(path string) (cfg *Config, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	cfg = &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, false
	}
	return cfg, true
}

// LoadConfig loads configuration from both global and local config files.
// Local config takes precedence over global config.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if globalPath, err := globalConfigPath(); err == nil {
		if globalCfg, ok := readConfig(globalPath); ok {
			mergeConfig(cfg, globalCfg)
		}
	}

	if localCfg, ok := readConfig(localConfigPath()); ok {
		mergeConfig(cfg, localCfg)
	}

	return cfg, nil
}

func saveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// SaveGlobalConfig saves configuration to the global config file
func SaveGlobalConfig(cfg *Config) error {
	globalPath, err := globalConfigPath()
	if err != nil {
		return err
	}
	return saveConfig(globalPath, cfg)
}

// SaveLocalConfig saves configuration to the working-directory config file
func SaveLocalConfig(cfg *Config) error {
	return saveConfig(localConfigPath(), cfg)
}

func splitKey(key string) (section, field string, err error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid config key: %s (expected format: section.key)", key)
	}
	return parts[0], parts[1], nil
}

// GetValue retrieves a configuration value by key (e.g., "display.color")
func GetValue(key string) (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}

	section, field, err := splitKey(key)
	if err != nil {
		return "", err
	}

	switch section {
	case "display":
		switch field {
		case "color":
			return strconv.FormatBool(cfg.Display.Color), nil
		case "digest":
			return strconv.FormatBool(cfg.Display.Digest), nil
		default:
			return "", fmt.Errorf("unknown display config field: %s", field)
		}
	case "input":
		switch field {
		case "file":
			return cfg.Input.File, nil
		default:
			return "", fmt.Errorf("unknown input config field: %s", field)
		}
	default:
		return "", fmt.Errorf("unknown config section: %s", section)
	}
}

// SetValue sets a configuration value by key (e.g., "input.file", "family.txt")
func SetValue(key, value string, global bool) error {
	var path string
	if global {
		p, err := globalConfigPath()
		if err != nil {
			return err
		}
		path = p
	} else {
		path = localConfigPath()
	}

	// Start from bare defaults so environment overrides are not saved.
	cfg, ok := readConfig(path)
	if !ok {
		cfg = &Config{Display: DisplayConfig{Color: true}}
	}

	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	switch section {
	case "display":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("display.%s expects true or false, got %q", field, value)
		}
		switch field {
		case "color":
			cfg.Display.Color = b
		case "digest":
			cfg.Display.Digest = b
		default:
			return fmt.Errorf("unknown display config field: %s", field)
		}
	case "input":
		switch field {
		case "file":
			cfg.Input.File = value
		default:
			return fmt.Errorf("unknown input config field: %s", field)
		}
	default:
		return fmt.Errorf("unknown config section: %s", section)
	}

	if global {
		return SaveGlobalConfig(cfg)
	}
	return SaveLocalConfig(cfg)
}

// mergeConfig merges source config into destination config
// Only non-empty values from source override destination
func mergeConfig(dst, src *Config) {
	if src.Input.File != "" {
		dst.Input.File = src.Input.File
	}

	// Bool values are always merged
	dst.Display.Color = src.Display.Color
	dst.Display.Digest = src.Display.Digest
}
