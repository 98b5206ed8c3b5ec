package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
)

// Config holds server and analysis defaults loaded from an optional
// YAML file. Missing fields fall back to Default values.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type ServerConfig struct {
	Addr                  string `yaml:"addr"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

type DefaultsConfig struct {
	Strategy        string `yaml:"strategy"`
	SuggestionCount int    `yaml:"suggestion_count"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                  ":8080",
			RequestTimeoutSeconds: 10,
		},
		Defaults: DefaultsConfig{
			Strategy:        scoring.DefaultStrategy().String(),
			SuggestionCount: 3,
		},
	}
}

// Load reads the config file at path. A missing file is not an error
// and yields the defaults, so the tool works without any setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("server.request_timeout_seconds must be positive")
	}
	if !scoring.Strategy(c.Defaults.Strategy).IsValid() {
		return fmt.Errorf("defaults.strategy %q is not a known strategy", c.Defaults.Strategy)
	}
	if c.Defaults.SuggestionCount < 1 {
		return fmt.Errorf("defaults.suggestion_count must be at least 1")
	}
	return nil
}

// RequestTimeout converts the configured seconds into a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}
