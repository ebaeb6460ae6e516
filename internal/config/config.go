// Package config loads CLI settings from a YAML file and merges them
// with command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/arenajson/internal/arena"
	"github.com/mcncl/arenajson/internal/parser"
)

// Config represents the complete configuration for arenajson
type Config struct {
	Input    string `yaml:"input"`
	Key      string `yaml:"key"`
	Capacity int    `yaml:"capacity"`
	MaxDepth int    `yaml:"max_depth"`
	JSONC    bool   `yaml:"jsonc"`
	Debug    bool   `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Input:    "products.json",
		Key:      "products",
		Capacity: arena.DefaultCapacity,
		MaxDepth: parser.DefaultMaxDepth,
		JSONC:    false,
		Debug:    false,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".arenajson.yml", ".arenajson.yaml", "arenajson.yml", "arenajson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// validate rejects settings the arena and parser cannot honor
func (c *Config) validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// MergeCLI applies command-line overrides on top of c. Empty strings and
// zero values mean the flag was not set and the config value stands.
func (c *Config) MergeCLI(input, key string, capacity, maxDepth int, jsonc, debug bool) {
	if input != "" {
		c.Input = input
	}
	if key != "" {
		c.Key = key
	}
	if capacity > 0 {
		c.Capacity = capacity
	}
	if maxDepth > 0 {
		c.MaxDepth = maxDepth
	}
	// Boolean flags only switch the behavior on; the config file is the
	// only way to switch it back off per-run.
	if jsonc {
		c.JSONC = true
	}
	if debug {
		c.Debug = true
	}
}
