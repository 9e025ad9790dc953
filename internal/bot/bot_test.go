package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/answer"
	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/faq"
	"github.com/hikarisalon/concierge/internal/kb"
	"github.com/hikarisalon/concierge/internal/metrics"
	"github.com/hikarisalon/concierge/internal/reservation"
	"github.com/hikarisalon/concierge/internal/router"
	"github.com/hikarisalon/concierge/internal/testutil"
)

// Wednesday, so 明日 lands on an open day.
var testNow = time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)

type fakeRecorder struct {
	records []domain.CompletedReservation
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, c domain.CompletedReservation) error {
	f.records = append(f.records, c)
	return f.err
}

func newTestBot(t *testing.T, rec Recorder) *Bot {
	t.Helper()
	store := kb.NewStore(testutil.SampleFacts())
	index := faq.NewIndex(faq.BackendTFIDF, testutil.SampleEntries(), store)
	gate := answer.NewGate(answer.ModeTemplate, nil, zap.NewNop())
	engine := reservation.NewEngineWithClock(
		reservation.NewStore(),
		reservation.NewSchedule(testNow),
		zap.NewNop(),
		func() time.Time { return testNow },
	)
	return New(engine, index, gate, rec, zap.NewNop())
}

func TestBot_Ping(t *testing.T) {
	b := newTestBot(t, nil)
	assert.Equal(t, "pong", b.Handle(context.Background(), "u1", "ping"))
	assert.Equal(t, "pong", b.Handle(context.Background(), "u1", " PING "))
}

func TestBot_FAQAnswer(t *testing.T) {
	b := newTestBot(t, nil)

	reply := b.Handle(context.Background(), "u1", "営業時間を教えてください")

	assert.Contains(t, reply, "10:00-19:00")
	assert.Contains(t, reply, "10:00-18:00")
}

func TestBot_UnknownQuestionRefused(t *testing.T) {
	b := newTestBot(t, nil)

	reply := b.Handle(context.Background(), "u1", "おすすめのシャンプーはどれですか")

	assert.Equal(t, answer.MsgRefusalNoMatch, reply)
}

func TestBot_FullReservationTurnSequence(t *testing.T) {
	rec := &fakeRecorder{}
	b := newTestBot(t, rec)
	ctx := context.Background()

	reply := b.Handle(ctx, "u1", "予約したい")
	assert.Contains(t, reply, "メニュー")

	b.Handle(ctx, "u1", "カットで")
	b.Handle(ctx, "u1", "未指定")
	b.Handle(ctx, "u1", "明日")
	reply = b.Handle(ctx, "u1", "14:00")
	assert.Contains(t, reply, "ご予約内容の確認")

	reply = b.Handle(ctx, "u1", "はい")
	assert.Contains(t, reply, "ご予約を承りました")
	assert.Contains(t, reply, "カット")
	assert.Contains(t, reply, "未指定")
	assert.Contains(t, reply, "2026-09-03")
	assert.Contains(t, reply, "14:00")

	require.Len(t, rec.records, 1)
	assert.Equal(t, "カット", rec.records[0].Service)
	assert.Equal(t, domain.StaffUnspecified, rec.records[0].Staff)
	assert.Equal(t, "2026-09-03", rec.records[0].Date)
	assert.Equal(t, "14:00", rec.records[0].Time)
}

func TestBot_ServiceNameShortcut(t *testing.T) {
	b := newTestBot(t, nil)

	reply := b.Handle(context.Background(), "u1", "パーマ")

	assert.Contains(t, reply, "パーマですね")
	assert.Contains(t, reply, "田中")
}

func TestBot_OpenDialogueConsumesIntentKeywords(t *testing.T) {
	b := newTestBot(t, nil)
	ctx := context.Background()

	b.Handle(ctx, "u1", "予約")
	// A FAQ-looking message mid-dialogue is flow input, not a new intent.
	reply := b.Handle(ctx, "u1", "営業時間を教えてください")

	assert.Contains(t, reply, "お取り扱いがございません")
}

func TestBot_CancelMidDialogue(t *testing.T) {
	b := newTestBot(t, nil)
	ctx := context.Background()

	b.Handle(ctx, "u1", "予約")
	reply := b.Handle(ctx, "u1", "キャンセル")
	assert.Equal(t, reservation.MsgCancelled, reply)

	// Next message starts over from intent routing.
	reply = b.Handle(ctx, "u1", "営業時間を教えてください")
	assert.Contains(t, reply, "10:00-19:00")
}

func TestBot_RecorderFailureDoesNotChangeReply(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("ledger down")}
	b := newTestBot(t, rec)
	ctx := context.Background()

	b.Handle(ctx, "u1", "カット")
	b.Handle(ctx, "u1", "田中")
	b.Handle(ctx, "u1", "明日")
	b.Handle(ctx, "u1", "10:00")
	reply := b.Handle(ctx, "u1", "はい")

	assert.Contains(t, reply, "ご予約を承りました")
	assert.Len(t, rec.records, 1)
}

func TestBot_MetricsCounting(t *testing.T) {
	m := metrics.New()
	b := newTestBot(t, nil).WithMetrics(m)
	ctx := context.Background()

	b.Handle(ctx, "u1", "営業時間を教えてください")
	b.Handle(ctx, "u1", "予約したい")
	b.Handle(ctx, "u1", "キャンセル")

	assert.Equal(t, 1.0, promtest.ToFloat64(m.MessagesTotal.WithLabelValues("general")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.MessagesTotal.WithLabelValues("reservation")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.MessagesTotal.WithLabelValues("dialogue")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ReservationsTotal.WithLabelValues("cancelled")))
}

func TestBot_CancelWithoutDialogue(t *testing.T) {
	b := newTestBot(t, nil)

	reply := b.Handle(context.Background(), "u1", "キャンセルしたい")

	assert.Equal(t, router.MsgCancelContact, reply)
}
