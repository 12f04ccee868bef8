// Package metrics exposes settlement counters and latencies to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pos-settlement/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pos"

// Settlement implements ports.SettlementMetrics.
type Settlement struct {
	registry      *prometheus.Registry
	evaluations   *prometheus.CounterVec
	splits        *prometheus.CounterVec
	confirmations *prometheus.CounterVec
	submitLatency *prometheus.HistogramVec
}

// New registers the settlement collectors on a fresh registry, together with
// the Go runtime and process collectors.
func New() *Settlement {
	reg := prometheus.NewRegistry()
	m := &Settlement{
		registry: reg,
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "evaluations_total",
			Help:      "Settlement evaluations by resulting status.",
		}, []string{"status"}),
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "split_proposals_total",
			Help:      "Even-split proposals by party count.",
		}, []string{"parties"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "confirmations_total",
			Help:      "Confirm requests by outcome.",
		}, []string{"outcome"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "confirm_duration_seconds",
			Help:      "Time spent confirming a settlement, including the sales API call.",
			Buckets:   prometheus.ExponentialBuckets(0.025, 2, 10),
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.evaluations, m.splits, m.confirmations, m.submitLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveEvaluation counts one evaluation.
func (m *Settlement) ObserveEvaluation(status domain.SettlementStatus) {
	m.evaluations.WithLabelValues(string(status)).Inc()
}

// ObserveSplit counts one split proposal. Party counts above 10 share a bucket.
func (m *Settlement) ObserveSplit(partyCount int) {
	label := strconv.Itoa(partyCount)
	if partyCount > 10 {
		label = "10+"
	}
	m.splits.WithLabelValues(label).Inc()
}

// ObserveConfirmation counts one confirm and records how long it took.
func (m *Settlement) ObserveConfirmation(outcome string, took time.Duration) {
	m.confirmations.WithLabelValues(outcome).Inc()
	m.submitLatency.WithLabelValues(outcome).Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Settlement) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Settlement) Registry() *prometheus.Registry {
	return m.registry
}
