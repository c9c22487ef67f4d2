package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnv overlays environment variables on cfg. Unset or empty variables
// keep the current value; malformed numbers and booleans are rejected.
func applyEnv(cfg *Config) error {
	setString(&cfg.App.Name, "APP_NAME")
	setString(&cfg.App.Environment, "APP_ENV")
	setString(&cfg.Server.Port, "HTTP_PORT")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Auth.APIToken, "API_TOKEN")
	setString(&cfg.Auth.APIToken, "AGENT_TRACKER_API_TOKEN")
	setString(&cfg.Auth.MetricsAPIToken, "METRICS_API_TOKEN")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setString(&cfg.Telemetry.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	setString(&cfg.Telemetry.ServiceName, "OTEL_SERVICE_NAME")

	if v := os.Getenv("METRICS_AUTH_REQUIRED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("METRICS_AUTH_REQUIRED", v)
		}
		cfg.Auth.MetricsAuthRequired = &b
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("OTEL_EXPORTER_OTLP_INSECURE", v)
		}
		cfg.Telemetry.Insecure = b
	}
	if v := os.Getenv("INGEST_MAX_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("INGEST_MAX_BATCH_SIZE", v)
		}
		cfg.Ingest.MaxBatchSize = n
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("RATE_LIMIT_RPS", v)
		}
		cfg.Ingest.RateLimit = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("RATE_LIMIT_BURST", v)
		}
		cfg.Ingest.RateBurst = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envError(key, value string) error {
	return NewLoadError("environment", fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value))
}
