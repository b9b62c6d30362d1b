package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rail44/tally/internal/log"
)

// FileName is the config file tally searches for
const FileName = "tally.toml"

// Config represents the complete configuration for tally. Every field is
// optional; the calculator pipeline itself takes no configuration, these
// only shape the shell around it.
type Config struct {
	// Prompt is shown at the start of each interactive input line
	Prompt string `toml:"prompt"`

	// Plain disables the interactive UI even on a terminal
	Plain bool `toml:"plain"`

	// LogLevel is one of error, warn, info, debug
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		LogLevel: "info",
	}
}

// Load loads configuration from tally.toml, searching upward from startPath.
// A missing file is not an error; defaults come back. explicitPath skips the
// search entirely and must exist.
func Load(startPath, explicitPath string) (*Config, error) {
	configPath := explicitPath
	if configPath == "" {
		found, err := findConfigFile(startPath)
		if err != nil {
			return Default(), nil
		}
		configPath = found
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fields the file left empty keep their defaults
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for tally.toml starting from the given path
func findConfigFile(startPath string) (string, error) {
	// Convert to absolute path
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	// Search upward for tally.toml
	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%s not found", FileName)
}

// validate checks that configured values are usable
func (c *Config) validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
