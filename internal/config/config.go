// Package config provides configuration management for mdslides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/mdslides/pkg/md"
)

// Config holds the mdslides configuration.
type Config struct {
	Title          string   `yaml:"title,omitempty"`
	Theme          string   `yaml:"theme,omitempty"`
	HighlightStyle string   `yaml:"highlight_style,omitempty"`
	LineNumbers    bool     `yaml:"line_numbers,omitempty"`
	AssetBase      string   `yaml:"asset_base,omitempty"`
	Extensions     []string `yaml:"extensions,omitempty"`
	Reveal         Reveal   `yaml:"reveal,omitempty"`
}

// Reveal holds reveal.js initialization options. Nil fields keep the defaults.
type Reveal struct {
	Transition string `yaml:"transition,omitempty"`
	Progress   *bool  `yaml:"progress,omitempty"`
	Center     *bool  `yaml:"center,omitempty"`
	Controls   *bool  `yaml:"controls,omitempty"`
	Hash       *bool  `yaml:"hash,omitempty"`
}

// Validate checks that configured names are known.
func (c *Config) Validate() error {
	if c.HighlightStyle != "" && !md.IsHighlightStyle(c.HighlightStyle) {
		return fmt.Errorf("unknown highlight_style %q", c.HighlightStyle)
	}
	for _, ext := range c.Extensions {
		if !md.KnownExtension(ext) {
			return fmt.Errorf("unknown extension %q (known: %s)", ext, strings.Join(md.ExtensionNames(), ", "))
		}
	}
	return md.ValidateTheme(c.Theme)
}

// Deck returns the deck settings: defaults overridden by the configured values.
func (c *Config) Deck() md.Deck {
	deck := md.DefaultDeck()
	if c.Title != "" {
		deck.Title = c.Title
	}
	if c.Theme != "" {
		deck.Theme = c.Theme
	}
	if c.HighlightStyle != "" {
		deck.HighlightStyle = c.HighlightStyle
	}
	if c.AssetBase != "" {
		deck.AssetBase = NormalizeAssetBase(c.AssetBase)
	}
	if c.Reveal.Transition != "" {
		deck.Transition = c.Reveal.Transition
	}
	setBool(&deck.Progress, c.Reveal.Progress)
	setBool(&deck.Center, c.Reveal.Center)
	setBool(&deck.Controls, c.Reveal.Controls)
	setBool(&deck.Hash, c.Reveal.Hash)
	return deck
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// NormalizeAssetBase ensures a non-empty asset base ends with a slash.
func NormalizeAssetBase(base string) string {
	if base == "" || strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if title := os.Getenv("MDSLIDES_TITLE"); title != "" {
		c.Title = title
	}
	if theme := os.Getenv("MDSLIDES_THEME"); theme != "" {
		c.Theme = theme
	}
	if style := os.Getenv("MDSLIDES_HIGHLIGHT_STYLE"); style != "" {
		c.HighlightStyle = style
	}
	if base := os.Getenv("MDSLIDES_ASSET_BASE"); base != "" {
		c.AssetBase = base
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdslides", "config.yml")
	}

	// Fall back to ~/.config/mdslides/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdslides", "config.yml")
	}

	return filepath.Join(home, ".config", "mdslides", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error; a file that exists but cannot be parsed is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
