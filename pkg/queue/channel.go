package queue

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is used mainly to be able to generate mocks for the AMQP behavior.
//
//nolint:interfacebloat // necessary for complete AMQP channel interface
type amqpChannel interface {
	io.Closer

	Cancel(consumer string, noWait bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Get(queue string, autoAck bool) (amqp.Delivery, bool, error)
	IsClosed() bool
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	NotifyFlow(c chan bool) chan bool
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
}

// ChannelWrapper is a named channel handed out by the ConnectionManager. It is bound to
// the connection generation it was opened on and is never reused after that connection
// is gone; callers re-acquire a fresh one from the manager.
type ChannelWrapper struct {
	name       string
	generation uint64

	amqpChan amqpChannel
	gate     *flowGate

	mutex    sync.Mutex
	closed   atomic.Bool
	declared map[string]struct{}
}

func newChannelWrapper(name string, generation uint64, ch amqpChannel) *ChannelWrapper {
	return &ChannelWrapper{
		name:       name,
		generation: generation,
		amqpChan:   ch,
		gate:       newFlowGate(),
		declared:   make(map[string]struct{}),
	}
}

// Name returns the cache key the channel was opened under.
func (ch *ChannelWrapper) Name() string {
	return ch.name
}

// Generation returns the connection generation the channel belongs to.
func (ch *ChannelWrapper) Generation() uint64 {
	return ch.generation
}

// IsClosed reports whether the channel can no longer be used.
func (ch *ChannelWrapper) IsClosed() bool {
	return ch.closed.Load() || ch.amqpChan.IsClosed()
}

// Close is a wrapper around amqp091-go.Channel.Close method, which closes a channel.
func (ch *ChannelWrapper) Close() error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	if ch.closed.Swap(true) {
		return amqp.ErrClosed
	}

	ch.gate.release()

	if ch.amqpChan.IsClosed() {
		return nil
	}

	return ch.amqpChan.Close()
}

// invalidate marks the channel unusable without talking to the broker.
func (ch *ChannelWrapper) invalidate() {
	ch.closed.Store(true)
	ch.gate.release()
}

// queueDeclare declares a durable queue once per channel.
func (ch *ChannelWrapper) queueDeclare(name string, args amqp.Table) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	if _, ok := ch.declared[name]; ok {
		return nil
	}

	if _, err := ch.amqpChan.QueueDeclare(name, true, false, false, false, args); err != nil {
		return err
	}

	ch.declared[name] = struct{}{}

	return nil
}

func (ch *ChannelWrapper) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
	if ch.closed.Load() {
		return amqp.ErrClosed
	}

	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.PublishWithContext(ctx, exchange, key, false, false, msg)
}

func (ch *ChannelWrapper) consume(queue, consumer string) (<-chan amqp.Delivery, error) {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.Consume(queue, consumer, false, false, false, false, nil)
}

func (ch *ChannelWrapper) get(queue string) (amqp.Delivery, bool, error) {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.Get(queue, false)
}

func (ch *ChannelWrapper) cancel(consumer string) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.Cancel(consumer, false)
}

// flowPaused reports whether the broker asked this channel to stop sending.
func (ch *ChannelWrapper) flowPaused() bool {
	return ch.gate.paused()
}

// awaitDrain blocks until the broker resumes the channel or the channel is invalidated.
func (ch *ChannelWrapper) awaitDrain() {
	<-ch.gate.wait()
}
