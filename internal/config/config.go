// Package config loads and saves the tickbar configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pablasso/tickbar/internal/activity"
	"gopkg.in/yaml.v3"
)

const (
	appDir   = "tickbar"
	fileName = "config.yaml"

	defaultStyle = "loading"
)

// ErrInvalidBarWidth is returned when a configured bar width is negative.
var ErrInvalidBarWidth = errors.New("bar width must not be negative")

// Config holds user preferences for rendering indicators.
type Config struct {
	BarWidth int    `yaml:"bar_width"`
	Style    string `yaml:"style"`
	Color    bool   `yaml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BarWidth: activity.DefaultBarWidth,
		Style:    defaultStyle,
		Color:    true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tickbar/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, fileName)
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.BarWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBarWidth, c.BarWidth)
	}
	return nil
}

// Load reads the configuration at path. A missing file yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Style == "" {
		cfg.Style = defaultStyle
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
