package config

import "time"

// Built-in defaults, overridden by agent-tracker.yaml and then the environment.
const (
	DefaultAppName         = "agent-tracker"
	DefaultEnvironment     = "development"
	DefaultPort            = "8080"
	DefaultMaxBatchSize    = 500
	DefaultRateLimit       = 20.0
	DefaultRateBurst       = 40
	DefaultMaxBodyBytes    = 10 << 20
	DefaultShutdownTimeout = 10 * time.Second
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        DefaultAppName,
			Environment: DefaultEnvironment,
		},
		Server: ServerConfig{
			Port:              DefaultPort,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   DefaultShutdownTimeout,
			MaxBodyBytes:      DefaultMaxBodyBytes,
		},
		Ingest: IngestConfig{
			MaxBatchSize: DefaultMaxBatchSize,
			RateLimit:    DefaultRateLimit,
			RateBurst:    DefaultRateBurst,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			ServiceName: DefaultAppName,
		},
	}
}
