package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/config"
)

func TestInit_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TelemetryConfig{ServiceName: "agent-tracker"}, "test", "dev")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid(), "no-op provider yields invalid span contexts")
}

func TestInit_WithEndpoint(t *testing.T) {
	cfg := config.TelemetryConfig{OTLPEndpoint: "localhost:4318", ServiceName: "agent-tracker", Insecure: true}

	// The exporter connects lazily, so init succeeds without a collector
	shutdown, err := Init(context.Background(), cfg, "test", "dev")
	require.NoError(t, err)

	_, span := Tracer("test").Start(context.Background(), "sampled")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
