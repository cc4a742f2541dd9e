package queue

import (
	"context"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
)

type MockDelivery struct {
	mock.Mock
}

func (m *MockDelivery) Ack(multiple bool) error {
	args := m.Called(multiple)

	return args.Error(0)
}

func (m *MockDelivery) Nack(multiple, requeue bool) error {
	args := m.Called(multiple, requeue)

	return args.Error(0)
}

func (m *MockDelivery) Reject(requeue bool) error {
	args := m.Called(requeue)

	return args.Error(0)
}

type MockAMQPChannel struct {
	mock.Mock
}

func (m *MockAMQPChannel) Close() error {
	args := m.Called()

	return args.Error(0)
}

func (m *MockAMQPChannel) Cancel(consumer string, noWait bool) error {
	args := m.Called(consumer, noWait)

	return args.Error(0)
}

func (m *MockAMQPChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, table amqp.Table) (<-chan amqp.Delivery, error) {
	args := m.Called(queue, consumer, autoAck, exclusive, noLocal, noWait, table)

	return args.Get(0).(<-chan amqp.Delivery), args.Error(1)
}

func (m *MockAMQPChannel) Get(queue string, autoAck bool) (amqp.Delivery, bool, error) {
	args := m.Called(queue, autoAck)

	return args.Get(0).(amqp.Delivery), args.Bool(1), args.Error(2)
}

func (m *MockAMQPChannel) IsClosed() bool {
	args := m.Called()

	return args.Bool(0)
}

func (m *MockAMQPChannel) NotifyClose(c chan *amqp.Error) chan *amqp.Error {
	args := m.Called(c)

	return args.Get(0).(chan *amqp.Error)
}

func (m *MockAMQPChannel) NotifyFlow(c chan bool) chan bool {
	args := m.Called(c)

	return args.Get(0).(chan bool)
}

func (m *MockAMQPChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)

	return args.Error(0)
}

func (m *MockAMQPChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, table amqp.Table) (amqp.Queue, error) {
	args := m.Called(name, durable, autoDelete, exclusive, noWait, table)

	return args.Get(0).(amqp.Queue), args.Error(1)
}

func (m *MockAMQPChannel) Qos(prefetchCount, prefetchSize int, global bool) error {
	args := m.Called(prefetchCount, prefetchSize, global)

	return args.Error(0)
}

type handledEvent struct {
	Queue   string
	Outcome Outcome
}

// recordingObserver collects the events reported by publishers and consumers.
type recordingObserver struct {
	mu        sync.Mutex
	published []uint8
	handled   []handledEvent
}

func (o *recordingObserver) MessagePublished(_ string, priority uint8) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.published = append(o.published, priority)
}

func (o *recordingObserver) MessageHandled(queue string, outcome Outcome, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.handled = append(o.handled, handledEvent{Queue: queue, Outcome: outcome})
}

func (o *recordingObserver) outcomes() []Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Outcome, 0, len(o.handled))
	for _, e := range o.handled {
		out = append(out, e.Outcome)
	}

	return out
}
