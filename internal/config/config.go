// Package config handles loading and saving layout configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hy4ri/tasks-layout/internal/layout"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	UI     UIConfig     `yaml:"ui"`
}

// LayoutConfig holds the task and query layout settings.
type LayoutConfig struct {
	// Hide lists fields to hide by name ("priority", "due date", "tags", "urgency")
	Hide []string `yaml:"hide,omitempty"`

	// Fields sets per-field flags directly
	Fields layout.TaskLayoutOptions `yaml:"fields"`

	// Query holds flags outside the component list
	Query layout.QueryLayoutOptions `yaml:"query"`
}

// UIConfig holds output-related settings.
type UIConfig struct {
	Explain bool `yaml:"explain"`
	Width   int  `yaml:"width,omitempty"` // description width, 0 for unlimited
	Plain   bool `yaml:"plain"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "tasks-layout")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Reject bad field names at load time rather than at render time.
	if _, err := cfg.BuildLayout(); err != nil {
		return nil, fmt.Errorf("invalid layout in %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BuildLayout derives the layout described by the config. Named fields in
// Hide are applied on top of Fields and Query.
func (c *Config) BuildLayout(extra ...string) (*layout.Layout, error) {
	task := c.Layout.Fields
	query := c.Layout.Query

	for _, name := range c.Layout.Hide {
		if err := layout.SetField(name, true, &task, &query); err != nil {
			return nil, err
		}
	}
	for _, line := range extra {
		if err := layout.ApplyInstruction(line, &task, &query); err != nil {
			return nil, err
		}
	}

	return layout.New(layout.WithTaskOptions(task), layout.WithQueryOptions(query)), nil
}
