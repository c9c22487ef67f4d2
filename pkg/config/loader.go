package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FileName is the optional YAML file looked up in the config directory.
const FileName = "agent-tracker.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Load agent-tracker.yaml from configDir if present, expanding {{.VAR}}
//  3. Merge the file over the defaults
//  4. Apply environment variable overrides
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"environment", cfg.App.Environment,
		"port", cfg.Server.Port,
		"max_batch_size", cfg.Ingest.MaxBatchSize,
		"api_token_set", cfg.Auth.APIToken != "",
		"metrics_auth", cfg.Auth.MetricsAuthEnabled(),
		"tracing", cfg.Telemetry.OTLPEndpoint != "")

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.configDir = configDir

	var fileCfg Config
	err := loadYAML(filepath.Join(configDir, FileName), &fileCfg)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		slog.Debug("No configuration file, using defaults and environment", "file", FileName)
	case err != nil:
		return nil, NewLoadError(FileName, err)
	default:
		// Non-zero file values override the defaults
		if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", FileName, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
