// Package bot ties the dialogue engine, the router and the FAQ pipeline into
// one message handler. Every transport (webhook, CLI, tests) funnels a
// (userID, message) pair through Handle and sends back the single reply.
package bot

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/answer"
	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/faq"
	"github.com/hikarisalon/concierge/internal/metrics"
	"github.com/hikarisalon/concierge/internal/reservation"
	"github.com/hikarisalon/concierge/internal/router"
)

// Recorder receives completed reservations. Recording is best effort; a
// failure is logged and never changes the reply already chosen for the user.
type Recorder interface {
	Record(ctx context.Context, c domain.CompletedReservation) error
}

// Bot handles one inbound message per call and returns one reply.
type Bot struct {
	engine    *reservation.Engine
	index     faq.Index
	gate      *answer.Gate
	recorder  Recorder
	threshold float64
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func New(engine *reservation.Engine, index faq.Index, gate *answer.Gate, recorder Recorder, log *zap.Logger) *Bot {
	return &Bot{
		engine:    engine,
		index:     index,
		gate:      gate,
		recorder:  recorder,
		threshold: faq.DefaultThreshold,
		log:       log,
	}
}

// WithMetrics attaches Prometheus counters. Safe to leave unset; the bot
// then skips all counting.
func (b *Bot) WithMetrics(m *metrics.Metrics) *Bot {
	b.metrics = m
	return b
}

// Handle runs one turn: dialogue continuation first, then intent routing,
// then the FAQ pipeline as the fallback.
func (b *Bot) Handle(ctx context.Context, userID, message string) string {
	text := strings.TrimSpace(message)

	if strings.EqualFold(text, "ping") {
		return "pong"
	}

	// An open dialogue consumes every message, cancel keywords included.
	if reply, completed, ok := b.engine.Continue(userID, text); ok {
		b.count("dialogue")
		if completed != nil {
			b.countOutcome("completed")
			b.record(ctx, *completed)
		} else if reply == reservation.MsgCancelled {
			b.countOutcome("cancelled")
		}
		return reply
	}

	decision := router.Classify(text)
	b.count(string(decision.Intent))
	b.log.Debug("message routed",
		zap.String("user_id", userID),
		zap.String("intent", string(decision.Intent)))

	switch decision.Intent {
	case domain.IntentReservation:
		return b.engine.Begin(userID)
	case domain.IntentServiceStart:
		return b.engine.BeginWithService(userID, decision.Service)
	case domain.IntentServiceInquiry, domain.IntentStaffInquiry, domain.IntentCancel:
		return decision.Reply
	}

	result := b.index.Search(text, b.threshold)
	return b.gate.Answer(ctx, text, result)
}

func (b *Bot) count(intent string) {
	if b.metrics == nil {
		return
	}
	b.metrics.MessagesTotal.WithLabelValues(intent).Inc()
}

func (b *Bot) countOutcome(outcome string) {
	if b.metrics == nil {
		return
	}
	b.metrics.ReservationsTotal.WithLabelValues(outcome).Inc()
}

func (b *Bot) record(ctx context.Context, c domain.CompletedReservation) {
	if b.recorder == nil {
		return
	}
	if err := b.recorder.Record(ctx, c); err != nil {
		b.log.Warn("reservation record failed",
			zap.String("user_id", c.UserID),
			zap.Error(err))
	}
}
