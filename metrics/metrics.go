// Package metrics provides Prometheus metrics for the ProPresenter MCP server.
// It tracks tool call counts, latencies, and upstream API health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "propresenter_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool call latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Tool call latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of tool calls currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// APIRequestsTotal counts ProPresenter API requests by method, endpoint and outcome
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "ProPresenter API requests by method, endpoint and outcome",
	}, []string{"method", "endpoint", "status"})

	// APILatency measures ProPresenter API round-trip latency
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "ProPresenter API round-trip latency by method and endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	// ConnectionFailures counts transport-level failures reaching ProPresenter
	ConnectionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "connection_failures_total",
		Help:      "Requests that could not reach ProPresenter at all",
	})
)

// RecordRequest records a completed tool call with its duration and outcome
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}
