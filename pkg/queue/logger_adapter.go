package queue

import (
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter adapts a zerolog.Logger to the queue Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new logger adapter tagged with the queue component.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{
		logger: logger.With().Str("component", "queue").Logger(),
	}
}

func (a *ZerologAdapter) Info() LogEvent {
	return zerologEvent{event: a.logger.Info()}
}

func (a *ZerologAdapter) Warn() LogEvent {
	return zerologEvent{event: a.logger.Warn()}
}

func (a *ZerologAdapter) Error() LogEvent {
	return zerologEvent{event: a.logger.Error()}
}

func (a *ZerologAdapter) Debug() LogEvent {
	return zerologEvent{event: a.logger.Debug()}
}

// zerologEvent wraps *zerolog.Event; a nil event (disabled level) is safe to chain.
type zerologEvent struct {
	event *zerolog.Event
}

func (e zerologEvent) Msg(msg string) {
	e.event.Msg(msg)
}

func (e zerologEvent) Err(err error) LogEvent {
	return zerologEvent{event: e.event.Err(err)}
}

func (e zerologEvent) Str(key, value string) LogEvent {
	return zerologEvent{event: e.event.Str(key, value)}
}

func (e zerologEvent) Int(key string, value int) LogEvent {
	return zerologEvent{event: e.event.Int(key, value)}
}

func (e zerologEvent) Uint64(key string, value uint64) LogEvent {
	return zerologEvent{event: e.event.Uint64(key, value)}
}

func (e zerologEvent) Dur(key string, value time.Duration) LogEvent {
	return zerologEvent{event: e.event.Dur(key, value)}
}
