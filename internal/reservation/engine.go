package reservation

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/domain"
)

// CancelKeywords abort an in-flight dialogue from any step.
var CancelKeywords = []string{"キャンセル", "やめる", "やめます", "中止"}

// affirmativeKeywords accept the final confirmation summary.
var affirmativeKeywords = []string{"はい", "確定", "お願い", "OK", "ok"}

// Engine drives the multi-step reservation dialogue. Each turn takes one user
// message, advances at most one step, and returns the next prompt. Invalid
// input re-prompts without changing state.
type Engine struct {
	store    *Store
	schedule *Schedule
	log      *zap.Logger
	now      func() time.Time
}

func NewEngine(store *Store, schedule *Schedule, log *zap.Logger) *Engine {
	return NewEngineWithClock(store, schedule, log, time.Now)
}

// NewEngineWithClock injects the clock used for relative date resolution.
func NewEngineWithClock(store *Store, schedule *Schedule, log *zap.Logger, now func() time.Time) *Engine {
	return &Engine{store: store, schedule: schedule, log: log, now: now}
}

// InDialogue reports whether the user has an open dialogue.
func (e *Engine) InDialogue(userID string) bool {
	_, ok := e.store.Get(userID)
	return ok
}

// Begin opens a dialogue at service selection, replacing any stale state.
func (e *Engine) Begin(userID string) string {
	lock := e.store.Acquire(userID)
	lock.Lock()
	defer lock.Unlock()

	e.store.Put(domain.Reservation{UserID: userID, Step: domain.StepServiceSelection})
	e.log.Info("reservation dialogue started", zap.String("user_id", userID))
	return servicePrompt()
}

// BeginWithService opens a dialogue with the service pre-selected, jumping
// straight to staff selection. Used when the user names a service outright.
func (e *Engine) BeginWithService(userID string, svc domain.ServiceCatalogEntry) string {
	lock := e.store.Acquire(userID)
	lock.Lock()
	defer lock.Unlock()

	e.store.Put(domain.Reservation{
		UserID:  userID,
		Step:    domain.StepStaffSelection,
		Service: svc.Name,
	})
	e.log.Info("reservation dialogue started",
		zap.String("user_id", userID),
		zap.String("service", svc.Name))
	return staffPrompt(svc.Name)
}

// Continue feeds one message into the user's open dialogue. ok is false when
// no dialogue exists, in which case the message was not consumed. completed is
// non-nil only on the turn the reservation is confirmed.
func (e *Engine) Continue(userID, message string) (reply string, completed *domain.CompletedReservation, ok bool) {
	lock := e.store.Acquire(userID)
	lock.Lock()
	defer lock.Unlock()

	res, exists := e.store.Get(userID)
	if !exists {
		return "", nil, false
	}

	if containsAny(message, CancelKeywords) {
		e.store.Delete(userID)
		e.log.Info("reservation dialogue cancelled",
			zap.String("user_id", userID),
			zap.String("step", string(res.Step)))
		return MsgCancelled, nil, true
	}

	switch res.Step {
	case domain.StepServiceSelection:
		return e.selectService(res, message), nil, true
	case domain.StepStaffSelection:
		return e.selectStaff(res, message), nil, true
	case domain.StepDateSelection:
		return e.selectDate(res, message), nil, true
	case domain.StepTimeSelection:
		return e.selectTime(res, message), nil, true
	case domain.StepConfirmation:
		return e.confirm(res, message)
	}

	// Unknown step means corrupted state; reset rather than wedge the user.
	e.log.Error("reservation state corrupted",
		zap.String("user_id", userID),
		zap.String("step", string(res.Step)))
	e.store.Delete(userID)
	return MsgCancelled, nil, true
}

func (e *Engine) selectService(res domain.Reservation, message string) string {
	svc, found := MatchService(message)
	if !found {
		return msgRetryService
	}
	res.Service = svc.Name
	res.Step = domain.StepStaffSelection
	e.store.Put(res)
	return staffPrompt(svc.Name)
}

func (e *Engine) selectStaff(res domain.Reservation, message string) string {
	staff, found := MatchStaff(message)
	if !found {
		return msgRetryStaff
	}
	res.Staff = staff
	res.Step = domain.StepDateSelection
	e.store.Put(res)
	return datePrompt(staff)
}

func (e *Engine) selectDate(res domain.Reservation, message string) string {
	date, found := ResolveDateWord(message, e.now())
	if !found {
		return msgRetryDate
	}
	res.Date = date
	res.Step = domain.StepTimeSelection
	e.store.Put(res)
	return timesPrompt(date, e.schedule.AvailableTimes(date))
}

func (e *Engine) selectTime(res domain.Reservation, message string) string {
	parsed, found := ParseTime(message)
	if !found {
		return msgRetryTime
	}

	open := e.schedule.AvailableTimes(res.Date)
	if !containsString(open, parsed) {
		return slotUnavailable(parsed, open)
	}

	res.Time = parsed
	res.Step = domain.StepConfirmation
	e.store.Put(res)

	svc, _ := ServiceByName(res.Service)
	return confirmPrompt(res, svc)
}

func (e *Engine) confirm(res domain.Reservation, message string) (string, *domain.CompletedReservation, bool) {
	if !containsAny(message, affirmativeKeywords) {
		e.store.Delete(res.UserID)
		e.log.Info("reservation declined at confirmation", zap.String("user_id", res.UserID))
		return MsgCancelled, nil, true
	}

	if !res.ReadyToConfirm() {
		e.log.Error("confirmation reached with incomplete state", zap.String("user_id", res.UserID))
		e.store.Delete(res.UserID)
		return MsgCancelled, nil, true
	}

	svc, _ := ServiceByName(res.Service)
	completed := &domain.CompletedReservation{
		UserID:          res.UserID,
		Service:         res.Service,
		Staff:           res.Staff,
		Date:            res.Date,
		Time:            res.Time,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
	}
	e.store.Delete(res.UserID)
	e.log.Info("reservation confirmed",
		zap.String("user_id", res.UserID),
		zap.String("service", res.Service),
		zap.String("date", res.Date),
		zap.String("time", res.Time))
	return completionMessage(*completed), completed, true
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
