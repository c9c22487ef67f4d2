package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// validate checks every section and stops at the first error.
func validate(cfg *Config) error {
	if cfg.App.Name == "" {
		return NewValidationError("app", "name", ErrMissingRequiredField)
	}
	if cfg.App.Environment == "" {
		return NewValidationError("app", "environment", ErrMissingRequiredField)
	}

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return NewValidationError("server", "port", fmt.Errorf("%w: %q is not a TCP port", ErrInvalidValue, cfg.Server.Port))
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return NewValidationError("server", "shutdown_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return NewValidationError("server", "max_body_bytes", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	if cfg.Ingest.MaxBatchSize < 1 {
		return NewValidationError("ingest", "max_batch_size", fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, cfg.Ingest.MaxBatchSize))
	}
	if cfg.Ingest.RateLimit < 0 {
		return NewValidationError("ingest", "rate_limit", fmt.Errorf("%w: cannot be negative", ErrInvalidValue))
	}
	if cfg.Ingest.RateLimit > 0 && cfg.Ingest.RateBurst < 1 {
		return NewValidationError("ingest", "rate_burst", fmt.Errorf("%w: must be at least 1 when rate limiting", ErrInvalidValue))
	}

	if !slices.Contains(logLevels, strings.ToLower(cfg.Logging.Level)) {
		return NewValidationError("logging", "level", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidValue, cfg.Logging.Level, strings.Join(logLevels, ", ")))
	}
	if !slices.Contains(logFormats, strings.ToLower(cfg.Logging.Format)) {
		return NewValidationError("logging", "format", fmt.Errorf("%w: %q (want text or json)", ErrInvalidValue, cfg.Logging.Format))
	}

	if cfg.Telemetry.OTLPEndpoint != "" && cfg.Telemetry.ServiceName == "" {
		return NewValidationError("telemetry", "service_name", ErrMissingRequiredField)
	}
	return nil
}
