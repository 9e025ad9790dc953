// Package metrics exposes Prometheus collectors for the bot: per-intent
// message counts, dialogue outcomes and generation-call health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hikarisalon/concierge/internal/llm"
)

// Metrics bundles the collectors and registers them on one registry.
type Metrics struct {
	registry *prometheus.Registry

	MessagesTotal     *prometheus.CounterVec
	ReservationsTotal *prometheus.CounterVec
	LLMCallsTotal     *prometheus.CounterVec
	LLMLatencySeconds *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_messages_total",
			Help: "Inbound messages by routed intent.",
		}, []string{"intent"}),
		ReservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_reservations_total",
			Help: "Reservation dialogues by terminal outcome.",
		}, []string{"outcome"}),
		LLMCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_llm_calls_total",
			Help: "Generation calls by result.",
		}, []string{"result"}),
		LLMLatencySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "concierge_llm_latency_seconds",
			Help:    "Generation call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"model"}),
	}

	m.registry.MustRegister(
		m.MessagesTotal,
		m.ReservationsTotal,
		m.LLMCallsTotal,
		m.LLMLatencySeconds,
	)
	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observer adapts the metrics to the generation-call observer interface.
func (m *Metrics) Observer() llm.Observer {
	return &callObserver{m: m}
}

type callObserver struct {
	m *Metrics
}

func (o *callObserver) OnCallComplete(event llm.CallEvent) {
	result := "success"
	if !event.Success {
		result = event.ErrorCode
	}
	o.m.LLMCallsTotal.WithLabelValues(result).Inc()
	o.m.LLMLatencySeconds.WithLabelValues(event.Model).Observe(float64(event.LatencyMs) / 1000)
}
