// Package config loads server settings from an optional YAML file, .env
// files and the environment.
//
// Precedence, lowest first: defaults, YAML file, environment. .env.local and
// .env are loaded into the environment before overrides are applied and
// never replace variables that are already set.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load.
const (
	EnvDraftsDir = "DEVTO_MCP_DRAFTS_DIR"
	EnvLogLevel  = "DEVTO_MCP_LOG_LEVEL"
	EnvWorkers   = "DEVTO_MCP_WORKERS"
	EnvIgnore    = "DEVTO_MCP_IGNORE"
)

// Config holds the server settings.
type Config struct {
	DraftsDir string   `yaml:"drafts_dir"`
	LogLevel  string   `yaml:"log_level"`
	Workers   int      `yaml:"workers"`
	Ignore    []string `yaml:"ignore"`
}

// Load builds a Config. path names an optional YAML file; an empty path
// skips it.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadEnvFiles() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.DraftsDir == "" {
		c.DraftsDir = "."
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDraftsDir); v != "" {
		c.DraftsDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid %s %q: must be a positive integer", EnvWorkers, v)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvIgnore); v != "" {
		for _, pattern := range strings.Split(v, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				c.Ignore = append(c.Ignore, pattern)
			}
		}
	}
	return nil
}
