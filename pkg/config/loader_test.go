package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "HTTP_PORT", "PORT", "API_TOKEN", "AGENT_TRACKER_API_TOKEN",
		"METRICS_API_TOKEN", "METRICS_AUTH_REQUIRED", "LOG_LEVEL", "LOG_FORMAT",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "OTEL_EXPORTER_OTLP_INSECURE",
		"INGEST_MAX_BATCH_SIZE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, DefaultAppName, cfg.App.Name)
	assert.Equal(t, DefaultEnvironment, cfg.App.Environment)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultMaxBatchSize, cfg.Ingest.MaxBatchSize)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Auth.APIToken)
	assert.True(t, cfg.Auth.MetricsAuthEnabled())
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRACKER_SECRET", "from-template")

	dir := writeConfig(t, `
app:
  environment: staging
server:
  port: "9090"
  shutdown_timeout: 30s
auth:
  api_token: "{{.TRACKER_SECRET}}"
  metrics_auth_required: false
ingest:
  max_batch_size: 50
logging:
  format: json
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, DefaultAppName, cfg.App.Name, "unset fields keep their default")
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "from-template", cfg.Auth.APIToken)
	assert.False(t, cfg.Auth.MetricsAuthEnabled())
	assert.Equal(t, 50, cfg.Ingest.MaxBatchSize)
	assert.Equal(t, DefaultRateBurst, cfg.Ingest.RateBurst)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestInitialize_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := writeConfig(t, "server:\n  port: \"9090\"\nauth:\n  api_token: file-token\n")

	t.Setenv("PORT", "7070")
	t.Setenv("AGENT_TRACKER_API_TOKEN", "env-token")
	t.Setenv("METRICS_AUTH_REQUIRED", "true")
	t.Setenv("INGEST_MAX_BATCH_SIZE", "10")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "1")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-token", cfg.Auth.APIToken)
	assert.Equal(t, "env-token", cfg.Auth.MetricsToken(), "metrics token falls back to the API token")
	assert.True(t, cfg.Auth.MetricsAuthEnabled())
	assert.Equal(t, 10, cfg.Ingest.MaxBatchSize)
	assert.Zero(t, cfg.Ingest.RateLimit)
	assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.Insecure)

	t.Setenv("METRICS_API_TOKEN", "metrics-only")
	cfg, err = Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "metrics-only", cfg.Auth.MetricsToken())
}

func TestInitialize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr error
		want    string
	}{
		{name: "invalid yaml", yaml: "server: [", wantErr: ErrInvalidYAML, want: "failed to load agent-tracker.yaml"},
		{name: "bad bool env", env: map[string]string{"METRICS_AUTH_REQUIRED": "sometimes"}, wantErr: ErrInvalidValue, want: "METRICS_AUTH_REQUIRED"},
		{name: "bad int env", env: map[string]string{"INGEST_MAX_BATCH_SIZE": "many"}, wantErr: ErrInvalidValue, want: "INGEST_MAX_BATCH_SIZE"},
		{name: "bad port", env: map[string]string{"PORT": "http"}, wantErr: ErrInvalidValue, want: "server: field 'port'"},
		{name: "port out of range", yaml: "server:\n  port: \"70000\"\n", wantErr: ErrInvalidValue, want: "port"},
		{name: "zero batch", env: map[string]string{"INGEST_MAX_BATCH_SIZE": "-1"}, wantErr: ErrInvalidValue, want: "max_batch_size"},
		{name: "negative rate", env: map[string]string{"RATE_LIMIT_RPS": "-2"}, wantErr: ErrInvalidValue, want: "rate_limit"},
		{name: "unknown level", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: ErrInvalidValue, want: "logging: field 'level'"},
		{name: "unknown format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: ErrInvalidValue, want: "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			dir := t.TempDir()
			if tt.yaml != "" {
				dir = writeConfig(t, tt.yaml)
			}

			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadAndValidationErrors(t *testing.T) {
	base := errors.New("base error")

	loadErr := NewLoadError(FileName, base)
	assert.Equal(t, "failed to load agent-tracker.yaml: base error", loadErr.Error())
	assert.ErrorIs(t, loadErr, base)

	valErr := NewValidationError("ingest", "rate_burst", base)
	assert.Equal(t, "ingest: field 'rate_burst': base error", valErr.Error())
	assert.ErrorIs(t, valErr, base)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TRACKER_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"substitutes template vars", "host: {{.TRACKER_HOST}}", "host: db.internal"},
		{"missing var is empty", "token: {{.TRACKER_UNSET_VAR}}", "token: "},
		{"shell syntax untouched", "token: ${TRACKER_HOST}$", "token: ${TRACKER_HOST}$"},
		{"malformed template passes through", "token: {{.TRACKER_HOST", "token: {{.TRACKER_HOST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "agent_number", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"agent_number":7`)

	buf.Reset()
	LoggingConfig{Level: "nonsense"}.NewLogger(&buf).Info("plain")
	assert.Contains(t, buf.String(), "level=INFO")
}
