// Package config loads the command line settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	TurnDelayMs int    `yaml:"turn_delay_ms"`
	LogLevel    string `yaml:"log_level"`
	StartPaused bool   `yaml:"start_paused"`
	ShowNet     bool   `yaml:"show_net"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		TurnDelayMs: 300,
		LogLevel:    "warn",
		StartPaused: true,
		ShowNet:     true,
	}
}

// LoadFile reads a YAML config file over the defaults. An empty path
// returns the defaults.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML config bytes over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.TurnDelayMs < 0 {
		return errors.New("turn_delay_ms must not be negative")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// TurnDelay returns the pause between animated moves.
func (c Config) TurnDelay() time.Duration {
	return time.Duration(c.TurnDelayMs) * time.Millisecond
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
