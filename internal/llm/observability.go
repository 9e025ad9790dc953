package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// ZapObserver logs call events through a zap logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer that logs events at debug/warn level.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Debug("llm call completed", fields...)
		return
	}
	o.log.Warn("llm call failed", append(fields, zap.String("error_code", event.ErrorCode))...)
}

type multiObserver struct {
	observers []Observer
}

// MultiObserver fans each event out to every given observer.
func MultiObserver(observers ...Observer) Observer {
	return &multiObserver{observers: observers}
}

func (m *multiObserver) OnCallComplete(event CallEvent) {
	for _, o := range m.observers {
		o.OnCallComplete(event)
	}
}
