package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the YAML file looked up inside the config directory.
const ConfigFileName = "reporadar.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read reporadar.yaml from configDir (optional; defaults apply if absent)
//  2. Expand environment variables
//  3. Parse YAML into the Config struct
//  4. Merge built-in defaults underneath user values
//  5. Validate everything, fail fast with field-level errors
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"topics", stats.Topics,
		"languages", stats.Languages,
		"models", stats.Models)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{configDir: configDir}

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Warn("No configuration file found, using built-in defaults", "path", path)
	case err != nil:
		return nil, NewLoadError(ConfigFileName, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, NewLoadError(ConfigFileName, fmt.Errorf("%w: %w", ErrInvalidYAML, err))
		}
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	return cfg, nil
}

// applyDefaults merges built-in defaults underneath any user-provided values.
func applyDefaults(cfg *Config) error {
	defaults := &Config{
		Scheduler: DefaultSchedulerConfig(),
		Discovery: DefaultDiscoveryConfig(),
		Batch:     DefaultBatchConfig(),
		Tiers:     DefaultTierPolicies(),
		GitHost:   DefaultGitHostConfig(),
		LLM:       DefaultLLMConfig(),
		Alerts:    DefaultAlertConfig(),
	}
	return mergo.Merge(cfg, defaults)
}
