package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher publishes JSON messages onto named queues through the shared "publisher" channel.
// It never retries; a failed publish is returned to the caller as a *PublishError.
type Publisher struct {
	conns    *ConnectionManager
	registry *Registry

	timeout     time.Duration
	channelName string
	logger      Logger
	observer    Observer
	newID       func() string
	now         func() time.Time
}

// NewPublisher creates a publisher on top of conns.
func NewPublisher(conns *ConnectionManager, registry *Registry, opts ...PublisherOption) *Publisher {
	options := defaultPublisherOptions()

	for _, opt := range opts {
		opt(&options)
	}

	return &Publisher{
		conns:       conns,
		registry:    registry,
		timeout:     options.timeout,
		channelName: options.channelName,
		logger:      options.logger,
		observer:    options.observer,
		newID:       options.newID,
		now:         options.now,
	}
}

// Init eagerly establishes the connection and the publisher channel.
func (p *Publisher) Init(ctx context.Context) error {
	if _, err := p.conns.Channel(ctx, p.channelName); err != nil {
		return fmt.Errorf("failed to initialize publisher: %w", err)
	}

	p.logger.Info().Str("channel", p.channelName).Msg("publisher initialized")

	return nil
}

// Disconnect closes the publisher channel only; the connection stays up for other channels.
func (p *Publisher) Disconnect() {
	p.conns.CloseChannel(p.channelName)

	p.logger.Info().Str("channel", p.channelName).Msg("publisher disconnected")
}

// EnsureQueue declares queue as a durable classic queue on ch. Declaring is idempotent on
// the broker side and cached per channel here.
func (p *Publisher) EnsureQueue(ch *ChannelWrapper, queue string) error {
	if err := ch.queueDeclare(queue, p.registry.QueueArguments(queue)); err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return nil
}

// Publish sends payload to queue and returns the message id. Priority defaults to 5 and is
// clamped into 0..10. When the broker has paused the channel the call returns only after
// the channel is resumed.
func (p *Publisher) Publish(ctx context.Context, queue string, payload any, opts ...PublishOption) (string, error) {
	options := resolvePublishOptions(opts)

	ch, err := p.conns.Channel(ctx, p.channelName)
	if err != nil {
		return "", newPublishError(queue, options.messageID, err)
	}

	return p.publish(ctx, ch, queue, payload, options)
}

// PublishBatch publishes every payload with its own generated message id. Backpressure is
// honoured per message. It stops at the first failure and returns the ids sent so far.
func (p *Publisher) PublishBatch(ctx context.Context, queue string, payloads []any, opts ...PublishOption) ([]string, error) {
	options := resolvePublishOptions(opts)
	options.messageID = ""

	ids := make([]string, 0, len(payloads))

	for _, payload := range payloads {
		ch, err := p.conns.Channel(ctx, p.channelName)
		if err != nil {
			return ids, newPublishError(queue, "", err)
		}

		id, err := p.publish(ctx, ch, queue, payload, options)
		if err != nil {
			return ids, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (p *Publisher) publish(ctx context.Context, ch *ChannelWrapper, queue string, payload any, options publishOptions) (string, error) {
	messageID := options.messageID
	if messageID == "" {
		messageID = p.newID()
	}

	if err := p.EnsureQueue(ch, queue); err != nil {
		return "", newPublishError(queue, messageID, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", newPublishError(queue, messageID, fmt.Errorf("could not marshal message: %w", err))
	}

	now := p.now()
	priority := ClampPriority(options.priority)

	headers := copyHeaders(options.headers)
	headers[RetryCountHeader] = int32(0)
	headers[PublishedAtHeader] = now.UnixMilli()

	publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = ch.publish(publishCtx, "", queue, amqp.Publishing{
		Headers:      headers,
		ContentType:  ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Priority:     priority,
		MessageId:    messageID,
		Timestamp:    now,
		Body:         body,
	})
	if err != nil {
		return "", newPublishError(queue, messageID, err)
	}

	if ch.flowPaused() {
		p.logger.Warn().
			Str("queue", queue).
			Str("message_id", messageID).
			Msg("broker paused the publisher channel, waiting for drain")

		ch.awaitDrain()
	}

	p.observer.MessagePublished(queue, priority)

	p.logger.Debug().
		Str("queue", queue).
		Str("message_id", messageID).
		Int("priority", int(priority)).
		Msg("message published")

	return messageID, nil
}

// ReplayDeadLetters moves up to limit messages from the dead-letter queue of base back to its
// main queue with a fresh retry budget. Each message is acknowledged off the dead-letter
// queue only after it was republished.
func (p *Publisher) ReplayDeadLetters(ctx context.Context, base string, limit int) (int, error) {
	topology, ok := p.registry.Lookup(base)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownQueue, base)
	}

	name := "replay:" + base

	ch, err := p.conns.Channel(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire replay channel: %w", err)
	}
	defer p.conns.CloseChannel(name)

	if err := p.registry.Declare(ch, topology); err != nil {
		return 0, fmt.Errorf("failed to declare topology for %q: %w", base, err)
	}

	replayed := 0

	for replayed < limit {
		if err := ctx.Err(); err != nil {
			return replayed, err
		}

		d, ok, err := ch.get(topology.DLQ)
		if err != nil {
			return replayed, fmt.Errorf("failed to get dead letter from %q: %w", topology.DLQ, err)
		}

		if !ok {
			break
		}

		msg := newMessage(topology.DLQ, d)

		headers := copyHeaders(msg.Headers)
		delete(headers, LastErrorHeader)
		delete(headers, FailedAtHeader)
		headers[RetryCountHeader] = int32(0)
		headers[ReplayedAtHeader] = p.now().UnixMilli()

		publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err = ch.publish(publishCtx, "", topology.Main, republishing(msg, headers))
		cancel()

		if err != nil {
			if nackErr := msg.delivery.Nack(false, true); nackErr != nil {
				p.logger.Error().Err(nackErr).Str("message_id", msg.ID).Msg("failed to return dead letter")
			}

			return replayed, newPublishError(topology.Main, msg.ID, err)
		}

		if err := msg.delivery.Ack(false); err != nil {
			return replayed, fmt.Errorf("failed to ack dead letter %q: %w", msg.ID, err)
		}

		replayed++
	}

	p.logger.Info().
		Str("queue", topology.DLQ).
		Int("replayed", replayed).
		Msg("dead letters replayed")

	return replayed, nil
}
