package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikarisalon/concierge/internal/llm"
)

func TestMetrics_CountersRegistered(t *testing.T) {
	m := New()
	m.MessagesTotal.WithLabelValues("reservation").Inc()
	m.ReservationsTotal.WithLabelValues("completed").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesTotal.WithLabelValues("reservation")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("completed")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_ObserverMapsEvents(t *testing.T) {
	m := New()
	obs := m.Observer()

	obs.OnCallComplete(llm.CallEvent{Model: "gpt-4o-mini", LatencyMs: 120, Success: true})
	obs.OnCallComplete(llm.CallEvent{Model: "gpt-4o-mini", LatencyMs: 50, Success: false, ErrorCode: "TIMEOUT"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMCallsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMCallsTotal.WithLabelValues("TIMEOUT")))
}
