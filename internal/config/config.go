// Package config provides configuration management for lnk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the lnk configuration.
type Config struct {
	// MentionURL is the destination template for mentions; must contain
	// the {username} placeholder when set.
	MentionURL string `yaml:"mention_url,omitempty"`
	// HashtagURL is the destination template for hashtags; must contain
	// the {tag} placeholder when set.
	HashtagURL string `yaml:"hashtag_url,omitempty"`
	// OutputFormat is the default output format for commands.
	OutputFormat string `yaml:"output_format,omitempty"`
	// URLWidth is the default display width for rendered URLs.
	// Zero disables shortening.
	URLWidth int `yaml:"url_width,omitempty"`
}

// Validate checks that all set fields are usable. Every field is
// optional; lnk works with an empty configuration.
func (c *Config) Validate() error {
	if c.MentionURL != "" && !strings.Contains(c.MentionURL, "{username}") {
		return fmt.Errorf("mention_url must contain the {username} placeholder")
	}
	if c.HashtagURL != "" && !strings.Contains(c.HashtagURL, "{tag}") {
		return fmt.Errorf("hashtag_url must contain the {tag} placeholder")
	}
	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("invalid output_format %q: must be table, json, or plain", c.OutputFormat)
	}
	if c.URLWidth < 0 {
		return fmt.Errorf("url_width must not be negative")
	}
	return nil
}

// LoadFromEnv overrides configuration from LNK_* environment variables
// when they are set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("LNK_MENTION_URL"); v != "" {
		c.MentionURL = v
	}
	if v := os.Getenv("LNK_HASHTAG_URL"); v != "" {
		c.HashtagURL = v
	}
	if v := os.Getenv("LNK_OUTPUT_FORMAT"); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv("LNK_URL_WIDTH"); v != "" {
		if width, err := strconv.Atoi(v); err == nil && width >= 0 {
			c.URLWidth = width
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lnk", "config.yml")
	}

	// Fall back to ~/.config/lnk/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".lnk", "config.yml")
	}

	return filepath.Join(home, ".config", "lnk", "config.yml")
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

	// Write with restricted permissions (user read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
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

// LoadWithEnv loads configuration from file and overrides with
// environment variables. A missing file is not an error; lnk then runs
// on env values and defaults alone.
func LoadWithEnv(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg
}
