package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultMaxRetries = 5
	DefaultRetryDelay = 60 * time.Second
)

// RetryPolicy bounds how often a failing message is retried. The fixed delay between attempts is
// the retry queue TTL, owned by the Registry.
type RetryPolicy struct {
	MaxRetries int
}

// DefaultRetryPolicy retries five times.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
	}
}

// Consumer consumes from main queues with manual acknowledgement and routes failed messages
// through the retry queue, then the dead-letter queue.
type Consumer struct {
	conns    *ConnectionManager
	registry *Registry

	policy         RetryPolicy
	handlerTimeout time.Duration
	publishTimeout time.Duration
	logger         Logger
	observer       Observer
}

// NewConsumer creates a consumer on top of conns.
func NewConsumer(conns *ConnectionManager, registry *Registry, opts ...ConsumerOption) *Consumer {
	options := defaultConsumerOptions()

	for _, opt := range opts {
		opt(&options)
	}

	return &Consumer{
		conns:          conns,
		registry:       registry,
		policy:         options.policy,
		handlerTimeout: options.handlerTimeout,
		publishTimeout: options.publishTimeout,
		logger:         options.logger,
		observer:       options.observer,
	}
}

// Consume declares the topology of base and processes its main queue until ctx is done.
// Connection and channel losses are survived: the consumer waits for the manager to
// reconnect and resumes on a freshly acquired channel.
func (c *Consumer) Consume(ctx context.Context, base string, handler Handler) error {
	topology, ok := c.registry.Lookup(base)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQueue, base)
	}

	name := "consumer:" + base

	for {
		err := c.consume(ctx, name, topology, handler)

		if ctxErr := ctx.Err(); ctxErr != nil {
			c.conns.CloseChannel(name)

			return ctxErr
		}

		if errors.Is(err, ErrClosed) {
			return err
		}

		c.logger.Warn().
			Err(err).
			Str("queue", topology.Main).
			Msg("consumer interrupted, waiting for broker")

		if err := c.awaitBroker(ctx); err != nil {
			return err
		}
	}
}

func (c *Consumer) consume(ctx context.Context, name string, topology Topology, handler Handler) error {
	ch, err := c.conns.Channel(ctx, name)
	if err != nil {
		return err
	}

	if err := c.registry.Declare(ch, topology); err != nil {
		return fmt.Errorf("failed to declare topology for %q: %w", topology.Main, err)
	}

	tag := fmt.Sprintf("%s-%s", topology.Main, uuid.NewString()[:8])

	deliveries, err := ch.consume(topology.Main, tag)
	if err != nil {
		return fmt.Errorf("failed to consume from %q: %w", topology.Main, err)
	}

	c.logger.Info().
		Str("queue", topology.Main).
		Str("consumer_tag", tag).
		Uint64("generation", ch.Generation()).
		Msg("consumer started")

	for {
		select {
		case <-ctx.Done():
			if err := ch.cancel(tag); err != nil {
				c.logger.Debug().Err(err).Str("consumer_tag", tag).Msg("failed to cancel consumer")
			}

			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}

			c.handle(ctx, ch, topology, newMessage(topology.Main, d), handler)
		}
	}
}

func (c *Consumer) awaitBroker(ctx context.Context) error {
	timer := time.NewTimer(c.conns.ReconnectDelay())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.conns.Ready():
		return nil
	}
}

// handle runs the per-message state machine: ack on success, retry queue while retries
// remain, dead-letter queue otherwise.
func (c *Consumer) handle(ctx context.Context, ch *ChannelWrapper, topology Topology, msg Message, handler Handler) {
	start := time.Now()

	handlerErr := c.invoke(ctx, handler, msg)
	if handlerErr == nil {
		if err := msg.delivery.Ack(false); err != nil {
			c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to ack message")
		}

		c.observer.MessageHandled(topology.Main, OutcomeAcked, time.Since(start))

		return
	}

	if ctx.Err() != nil {
		c.requeue(msg)
		c.observer.MessageHandled(topology.Main, OutcomeRequeued, time.Since(start))

		return
	}

	c.logger.Warn().
		Err(handlerErr).
		Str("queue", topology.Main).
		Str("message_id", msg.ID).
		Int("retry_count", msg.RetryCount).
		Msg("message handler failed")

	if msg.RetryCount < c.policy.MaxRetries && !IsPermanent(handlerErr) {
		outcome := c.retry(ctx, ch, topology, msg, handlerErr)
		c.observer.MessageHandled(topology.Main, outcome, time.Since(start))

		return
	}

	outcome := c.deadLetter(ctx, ch, topology, msg, handlerErr)
	c.observer.MessageHandled(topology.Main, outcome, time.Since(start))
}

func (c *Consumer) retry(ctx context.Context, ch *ChannelWrapper, topology Topology, msg Message, cause error) Outcome {
	headers := copyHeaders(msg.Headers)
	headers[RetryCountHeader] = int32(msg.RetryCount + 1)
	headers[OriginalQueueHeader] = topology.Main
	headers[LastErrorHeader] = truncateError(cause)

	if err := c.forward(ctx, ch, topology.Retry, msg, headers); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to schedule retry, returning message to broker")
		c.requeue(msg)

		return OutcomeRequeued
	}

	if err := msg.delivery.Ack(false); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to ack retried message")
	}

	c.logger.Info().
		Str("queue", topology.Retry).
		Str("message_id", msg.ID).
		Int("retry_count", msg.RetryCount+1).
		Dur("delay", c.registry.RetryDelay()).
		Msg("message scheduled for retry")

	return OutcomeRetried
}

func (c *Consumer) deadLetter(ctx context.Context, ch *ChannelWrapper, topology Topology, msg Message, cause error) Outcome {
	headers := copyHeaders(msg.Headers)
	headers[RetryCountHeader] = int32(msg.RetryCount)
	headers[OriginalQueueHeader] = topology.Main
	headers[LastErrorHeader] = truncateError(cause)
	headers[FailedAtHeader] = time.Now().UTC().Format(time.RFC3339Nano)

	if err := c.forward(ctx, ch, topology.DLQ, msg, headers); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to dead-letter message, returning message to broker")
		c.requeue(msg)

		return OutcomeRequeued
	}

	if err := msg.delivery.Ack(false); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to ack dead-lettered message")
	}

	c.logger.Error().
		Err(cause).
		Str("queue", topology.DLQ).
		Str("message_id", msg.ID).
		Int("retry_count", msg.RetryCount).
		Msg("message moved to dead-letter queue")

	return OutcomeDeadLettered
}

func (c *Consumer) forward(ctx context.Context, ch *ChannelWrapper, queue string, msg Message, headers amqp.Table) error {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.publishTimeout)
	defer cancel()

	return ch.publish(publishCtx, "", queue, republishing(msg, headers))
}

func (c *Consumer) requeue(msg Message) {
	if err := msg.delivery.Nack(false, true); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to requeue message")
	}
}

func (c *Consumer) invoke(ctx context.Context, handler Handler, msg Message) error {
	if c.handlerTimeout <= 0 {
		return safeCall(ctx, handler, msg)
	}

	handlerCtx, cancel := context.WithTimeout(ctx, c.handlerTimeout)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- safeCall(handlerCtx, handler, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-handlerCtx.Done():
		return fmt.Errorf("%w after %s", ErrHandlerTimeout, c.handlerTimeout)
	}
}

func safeCall(ctx context.Context, handler Handler, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("message handler panicked: %v", r)
		}
	}()

	return handler(ctx, msg)
}
