package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentsAreRegistered(t *testing.T) {
	before := testutil.ToFloat64(InvocationsRecorded.WithLabelValues(SourceMCP))
	InvocationsRecorded.WithLabelValues(SourceMCP).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(InvocationsRecorded.WithLabelValues(SourceMCP)))

	BulkBatches.WithLabelValues(OutcomeCommitted).Inc()
	AuthFailures.WithLabelValues("missing").Inc()
	RateLimited.Inc()
	MetricsSectionFailures.WithLabelValues("activity").Inc()
	HTTPRequests.WithLabelValues("GET", "/health", "200").Inc()

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer,
		"agent_tracker_bulk_batches_total",
		"agent_tracker_auth_failures_total",
		"agent_tracker_rate_limited_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequests), 1)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(MetricsSectionFailures), 1)
}
