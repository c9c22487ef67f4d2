// Package config loads the agent-tracker runtime configuration from built-in
// defaults, an optional agent-tracker.yaml and environment variables.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Config is the umbrella configuration object returned by Initialize and
// injected into the server, services and CLI commands.
type Config struct {
	configDir string // Configuration directory path (for reference)

	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// AppConfig identifies the deployment in logs and the metrics snapshot.
type AppConfig struct {
	Name        string `yaml:"name,omitempty"`
	Environment string `yaml:"environment,omitempty"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port              string        `yaml:"port,omitempty"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout,omitempty"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout,omitempty"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes,omitempty"`
}

// AuthConfig holds the shared secrets for machine clients. An empty secret
// makes the protected endpoints answer 500 rather than run unauthenticated.
type AuthConfig struct {
	// APIToken guards bulk ingestion and the MCP endpoint.
	APIToken string `yaml:"api_token,omitempty"`

	// MetricsAPIToken guards /api/metrics. Falls back to APIToken.
	MetricsAPIToken string `yaml:"metrics_api_token,omitempty"`

	// MetricsAuthRequired can switch metrics authentication off (default true).
	MetricsAuthRequired *bool `yaml:"metrics_auth_required,omitempty"`
}

// MetricsToken returns the secret that guards the metrics endpoint.
func (a AuthConfig) MetricsToken() string {
	if a.MetricsAPIToken != "" {
		return a.MetricsAPIToken
	}
	return a.APIToken
}

// MetricsAuthEnabled reports whether /api/metrics requires a bearer token.
func (a AuthConfig) MetricsAuthEnabled() bool {
	return a.MetricsAuthRequired == nil || *a.MetricsAuthRequired
}

// IngestConfig bounds the machine-facing /api group.
type IngestConfig struct {
	MaxBatchSize int `yaml:"max_batch_size,omitempty"`

	// RateLimit is the sustained request rate per second for /api; 0 disables it.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	RateBurst int     `yaml:"rate_burst,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text, json
}

// NewLogger builds the process logger described by the config.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.slogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (l LoggingConfig) slogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// TelemetryConfig configures OpenTelemetry tracing. An empty endpoint
// installs a no-op tracer provider.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint,omitempty"`
	ServiceName  string `yaml:"service_name,omitempty"`
	Insecure     bool   `yaml:"insecure,omitempty"`
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
