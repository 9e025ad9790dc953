package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	clock := func() time.Time { return wednesday }
	return NewEngineWithClock(NewStore(), NewSchedule(wednesday), zap.NewNop(), clock)
}

func TestEngine_HappyPath(t *testing.T) {
	e := newTestEngine(t)

	reply := e.Begin("u1")
	assert.Contains(t, reply, "カット")
	assert.Contains(t, reply, "キャンセル")

	reply, completed, ok := e.Continue("u1", "カットで")
	require.True(t, ok)
	require.Nil(t, completed)
	assert.Contains(t, reply, "田中")

	reply, completed, ok = e.Continue("u1", "おまかせ")
	require.True(t, ok)
	require.Nil(t, completed)
	assert.Contains(t, reply, "日にち")

	reply, completed, ok = e.Continue("u1", "明日")
	require.True(t, ok)
	require.Nil(t, completed)
	assert.Contains(t, reply, "2026-09-03")
	assert.Contains(t, reply, "10:00")

	reply, completed, ok = e.Continue("u1", "14:00")
	require.True(t, ok)
	require.Nil(t, completed)
	assert.Contains(t, reply, "ご予約内容の確認")
	assert.Contains(t, reply, "カット")
	assert.Contains(t, reply, "3,000")

	reply, completed, ok = e.Continue("u1", "はい")
	require.True(t, ok)
	require.NotNil(t, completed)
	assert.Contains(t, reply, "ご予約を承りました")
	assert.Contains(t, reply, "カット")
	assert.Contains(t, reply, "未指定")
	assert.Contains(t, reply, "2026-09-03")
	assert.Contains(t, reply, "14:00")
	assert.Equal(t, &domain.CompletedReservation{
		UserID:          "u1",
		Service:         "カット",
		Staff:           domain.StaffUnspecified,
		Date:            "2026-09-03",
		Time:            "14:00",
		DurationMinutes: 60,
		Price:           3000,
	}, completed)

	assert.False(t, e.InDialogue("u1"), "state is discarded after completion")
}

func TestEngine_BeginWithServiceSkipsServiceStep(t *testing.T) {
	e := newTestEngine(t)
	svc, _ := ServiceByName("カラー")

	reply := e.BeginWithService("u1", svc)
	assert.Contains(t, reply, "カラーですね")
	assert.Contains(t, reply, "田中")

	res, ok := e.store.Get("u1")
	require.True(t, ok)
	assert.Equal(t, domain.StepStaffSelection, res.Step)
	assert.Equal(t, "カラー", res.Service)
}

func TestEngine_CancelAtEveryStep(t *testing.T) {
	steps := []struct {
		name     string
		messages []string
	}{
		{"service selection", nil},
		{"staff selection", []string{"カット"}},
		{"date selection", []string{"カット", "田中"}},
		{"time selection", []string{"カット", "田中", "明日"}},
		{"confirmation", []string{"カット", "田中", "明日", "14:00"}},
	}

	for _, tt := range steps {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.Begin("u1")
			for _, msg := range tt.messages {
				_, completed, ok := e.Continue("u1", msg)
				require.True(t, ok)
				require.Nil(t, completed)
			}

			reply, completed, ok := e.Continue("u1", "やっぱりキャンセルで")
			require.True(t, ok)
			assert.Nil(t, completed)
			assert.Equal(t, MsgCancelled, reply)
			assert.False(t, e.InDialogue("u1"))
		})
	}
}

func TestEngine_InvalidInputKeepsState(t *testing.T) {
	e := newTestEngine(t)
	e.Begin("u1")

	for i := 0; i < 3; i++ {
		reply, completed, ok := e.Continue("u1", "ネイルお願いします")
		require.True(t, ok)
		require.Nil(t, completed)
		assert.Contains(t, reply, "お取り扱いがございません")
	}

	res, ok := e.store.Get("u1")
	require.True(t, ok)
	assert.Equal(t, domain.StepServiceSelection, res.Step)
	assert.Empty(t, res.Service)
}

func TestEngine_UnparsableTimeReprompts(t *testing.T) {
	e := newTestEngine(t)
	e.Begin("u1")
	e.Continue("u1", "カット")
	e.Continue("u1", "田中")
	e.Continue("u1", "明日")

	reply, _, ok := e.Continue("u1", "午後がいいなあ")
	require.True(t, ok)
	assert.Contains(t, reply, "読み取れませんでした")

	res, _ := e.store.Get("u1")
	assert.Equal(t, domain.StepTimeSelection, res.Step)
}

func TestEngine_UnavailableSlotRejected(t *testing.T) {
	e := newTestEngine(t)
	e.Begin("u1")
	e.Continue("u1", "カット")
	e.Continue("u1", "田中")
	e.Continue("u1", "明日")

	reply, _, ok := e.Continue("u1", "25:00")
	require.True(t, ok)
	assert.Contains(t, reply, "25:00は空いておりません")

	reply, _, _ = e.Continue("u1", "12:00")
	assert.Contains(t, reply, "12:00は空いておりません")

	res, _ := e.store.Get("u1")
	assert.Equal(t, domain.StepTimeSelection, res.Step)
	assert.Empty(t, res.Time)
}

func TestEngine_DecliningConfirmationCancels(t *testing.T) {
	e := newTestEngine(t)
	e.Begin("u1")
	e.Continue("u1", "カット")
	e.Continue("u1", "田中")
	e.Continue("u1", "明日")
	e.Continue("u1", "14:00")

	reply, completed, ok := e.Continue("u1", "いいえ")
	require.True(t, ok)
	assert.Nil(t, completed)
	assert.Equal(t, MsgCancelled, reply)
	assert.False(t, e.InDialogue("u1"))
}

func TestEngine_ContinueWithoutDialogue(t *testing.T) {
	e := newTestEngine(t)

	reply, completed, ok := e.Continue("u1", "こんにちは")
	assert.False(t, ok)
	assert.Empty(t, reply)
	assert.Nil(t, completed)
}

func TestEngine_BeginReplacesStaleDialogue(t *testing.T) {
	e := newTestEngine(t)
	e.Begin("u1")
	e.Continue("u1", "カット")

	e.Begin("u1")
	res, ok := e.store.Get("u1")
	require.True(t, ok)
	assert.Equal(t, domain.StepServiceSelection, res.Step)
	assert.Empty(t, res.Service)
}

func TestEngine_UsersAreIndependent(t *testing.T) {
	e := newTestEngine(t)
	e.Begin("u1")
	e.Begin("u2")
	e.Continue("u1", "カット")

	res1, _ := e.store.Get("u1")
	res2, _ := e.store.Get("u2")
	assert.Equal(t, domain.StepStaffSelection, res1.Step)
	assert.Equal(t, domain.StepServiceSelection, res2.Step)
}
