package queue

import (
	"context"
	"time"
)

// Handler processes one message. Returning nil acknowledges it; returning an error routes it
// through the retry queue, or straight to the dead-letter queue when wrapped with Permanent.
type Handler func(ctx context.Context, msg Message) error

// MessagePublisher is the publishing side consumed by application services.
type MessagePublisher interface {
	Publish(ctx context.Context, queue string, payload any, opts ...PublishOption) (string, error)
	PublishBatch(ctx context.Context, queue string, payloads []any, opts ...PublishOption) ([]string, error)
	ReplayDeadLetters(ctx context.Context, base string, limit int) (int, error)
}

// MessageConsumer is the consuming side used by subscriber processes.
type MessageConsumer interface {
	Consume(ctx context.Context, base string, handler Handler) error
}

// Outcome is the terminal result of handling one delivery.
type Outcome string

const (
	OutcomeAcked        Outcome = "acked"
	OutcomeRetried      Outcome = "retried"
	OutcomeDeadLettered Outcome = "dead_lettered"
	OutcomeRequeued     Outcome = "requeued"
)

// Observer receives messaging events, typically to record metrics.
type Observer interface {
	MessagePublished(queue string, priority uint8)
	MessageHandled(queue string, outcome Outcome, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) MessagePublished(string, uint8) {}

func (nopObserver) MessageHandled(string, Outcome, time.Duration) {}

var (
	_ MessagePublisher = (*Publisher)(nil)
	_ MessageConsumer  = (*Consumer)(nil)
)
