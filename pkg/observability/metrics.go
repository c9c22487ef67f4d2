// Package observability holds the Prometheus instruments exported on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route template and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_tracker_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agent_tracker_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	}, []string{"method", "route"})

	// AuthFailures counts rejected bearer-token checks by reason
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_tracker_auth_failures_total",
		Help: "Rejected bearer-token authentications by reason",
	}, []string{"reason"})

	// RateLimited counts requests refused by the /api limiter
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agent_tracker_rate_limited_total",
		Help: "Requests rejected by the API rate limiter",
	})

	// InvocationsRecorded counts stored invocations by entry point
	InvocationsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_tracker_invocations_recorded_total",
		Help: "Invocations stored, by source (form, bulk, mcp)",
	}, []string{"source"})

	// BulkBatches counts bulk ingestion requests by outcome
	BulkBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_tracker_bulk_batches_total",
		Help: "Bulk ingestion batches by outcome (committed, rejected, error)",
	}, []string{"outcome"})

	// BulkBatchSize tracks the number of records per bulk request
	BulkBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "agent_tracker_bulk_batch_size",
		Help:    "Records per bulk ingestion request",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})

	// MetricsSectionFailures counts snapshot sections that could not be computed
	MetricsSectionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_tracker_metrics_section_failures_total",
		Help: "Metrics snapshot sections that failed, by section",
	}, []string{"section"})
)

// Invocation sources.
const (
	SourceForm = "form"
	SourceBulk = "bulk"
	SourceMCP  = "mcp"
)

// Bulk batch outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeError     = "error"
)
