// Package config loads gf's optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the gf configuration. Every field is optional; a
// missing config file yields the zero config.
type Config struct {
	// DefaultEngine is used for records that name no engine. Empty
	// falls back to the compiled-in default.
	DefaultEngine string `yaml:"default_engine,omitempty"`

	// PatternDir overrides the pattern directory. Must be absolute.
	PatternDir string `yaml:"pattern_dir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigManager manages configuration persistence.
type ConfigManager struct {
	configPath string
}

// NewConfigManager creates a manager for the default config path,
// ~/.config/gf/config.yaml.
func NewConfigManager() (*ConfigManager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "gf", "config.yaml")

	return &ConfigManager{configPath: configPath}, nil
}

// NewConfigManagerWithPath creates a config manager with a custom
// config path.
func NewConfigManagerWithPath(configPath string) *ConfigManager {
	return &ConfigManager{configPath: configPath}
}

// Load reads the configuration, or returns the default if the file
// doesn't exist.
func (cm *ConfigManager) Load() (*Config, error) {
	if _, err := os.Stat(cm.configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to file.
func (cm *ConfigManager) Save(config *Config) error {
	if err := validate(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file.
func (cm *ConfigManager) GetConfigPath() string {
	return cm.configPath
}

func validate(config *Config) error {
	if config.PatternDir != "" && !filepath.IsAbs(config.PatternDir) {
		return fmt.Errorf("pattern_dir must be an absolute path, got %q", config.PatternDir)
	}
	return nil
}
