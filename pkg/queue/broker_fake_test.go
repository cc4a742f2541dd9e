package queue

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// fakeBroker is an in-memory stand-in for RabbitMQ covering the default exchange, durable
// queues, per-queue TTL with dead-letter routing, priorities, prefetch and manual acks.
type fakeBroker struct {
	mu      sync.Mutex
	queues  map[string]*fakeQueue
	conns   []*fakeConnection
	history []routedMessage
	dials   int
	dialErr error
	opening chan struct{}
	waiting int
	nextID  uint64
	nextTag uint64
}

type routedMessage struct {
	Queue      string
	MessageID  string
	RetryCount int
}

type fakeMessage struct {
	id uint64
	d  amqp.Delivery
}

type fakeQueue struct {
	name      string
	args      amqp.Table
	pending   []fakeMessage
	consumers []*fakeConsumer
}

type fakeConsumer struct {
	tag        string
	queue      string
	ch         *fakeChannel
	deliveries chan amqp.Delivery
}

type fakeUnacked struct {
	queue string
	msg   fakeMessage
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{
		queues: make(map[string]*fakeQueue),
	}
}

func (b *fakeBroker) dial(_ string, _ amqp.Config) (amqpConnection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.dials++

	if b.dialErr != nil {
		return nil, b.dialErr
	}

	conn := &fakeConnection{broker: b}
	b.conns = append(b.conns, conn)

	return conn, nil
}

func (b *fakeBroker) setDialErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.dialErr = err
}

// holdChannelOpens makes Channel calls wait until the returned release func runs.
func (b *fakeBroker) holdChannelOpens() func() {
	gate := make(chan struct{})

	b.mu.Lock()
	b.opening = gate
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			b.opening = nil
			b.mu.Unlock()

			close(gate)
		})
	}
}

// openWaiters counts Channel calls currently held by holdChannelOpens.
func (b *fakeBroker) openWaiters() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.waiting
}

func (b *fakeBroker) dialCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dials
}

// dropConnections simulates a network failure on every open connection.
func (b *fakeBroker) dropConnections() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, conn := range b.conns {
		if !conn.closed {
			conn.shutdownLocked(&amqp.Error{Code: amqp.ConnectionForced, Reason: "broker restarted", Server: true})
		}
	}

	b.dispatchLocked()
}

func (b *fakeBroker) lastConnection() *fakeConnection {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.conns) == 0 {
		return nil
	}

	return b.conns[len(b.conns)-1]
}

func (b *fakeBroker) queueArgs(name string) amqp.Table {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, ok := b.queues[name]
	if !ok {
		return nil
	}

	return q.args
}

func (b *fakeBroker) pending(name string) []amqp.Delivery {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, ok := b.queues[name]
	if !ok {
		return nil
	}

	out := make([]amqp.Delivery, 0, len(q.pending))
	for _, m := range q.pending {
		out = append(out, m.d)
	}

	return out
}

// depth counts ready and unacknowledged messages of a queue.
func (b *fakeBroker) depth(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	if q, ok := b.queues[name]; ok {
		n = len(q.pending)
	}

	for _, conn := range b.conns {
		for _, ch := range conn.channels {
			for _, u := range ch.unacked {
				if u.queue == name {
					n++
				}
			}
		}
	}

	return n
}

func (b *fakeBroker) routedTo(name string) []routedMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []routedMessage

	for _, r := range b.history {
		if r.Queue == name {
			out = append(out, r)
		}
	}

	return out
}

func (b *fakeBroker) routeLocked(queue string, d amqp.Delivery) {
	q, ok := b.queues[queue]
	if !ok {
		return
	}

	b.nextID++
	m := fakeMessage{id: b.nextID, d: d}
	q.pending = append(q.pending, m)

	b.history = append(b.history, routedMessage{
		Queue:      queue,
		MessageID:  d.MessageId,
		RetryCount: RetryCount(d.Headers),
	})

	if ttl, ok := q.args["x-message-ttl"].(int64); ok {
		time.AfterFunc(time.Duration(ttl)*time.Millisecond, func() {
			b.expire(queue, m.id)
		})
	}
}

func (b *fakeBroker) expire(queue string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, ok := b.queues[queue]
	if !ok {
		return
	}

	idx := slices.IndexFunc(q.pending, func(m fakeMessage) bool { return m.id == id })
	if idx < 0 {
		return
	}

	m := q.pending[idx]
	q.pending = slices.Delete(q.pending, idx, idx+1)

	target, _ := q.args["x-dead-letter-routing-key"].(string)
	if target == "" {
		return
	}

	d := m.d
	d.Headers = copyHeaders(d.Headers)
	d.Headers["x-death"] = []any{amqp.Table{"queue": queue, "reason": "expired"}}
	d.RoutingKey = target

	b.routeLocked(target, d)
	b.dispatchLocked()
}

func (b *fakeBroker) dispatchLocked() {
	for _, q := range b.queues {
		for len(q.pending) > 0 {
			c := q.nextConsumer()
			if c == nil {
				break
			}

			idx := 0
			for i, m := range q.pending {
				if m.d.Priority > q.pending[idx].d.Priority {
					idx = i
				}
			}

			m := q.pending[idx]
			q.pending = slices.Delete(q.pending, idx, idx+1)

			b.nextTag++
			d := m.d
			d.DeliveryTag = b.nextTag
			d.ConsumerTag = c.tag
			d.Acknowledger = c.ch

			c.ch.unacked[d.DeliveryTag] = &fakeUnacked{queue: q.name, msg: fakeMessage{id: m.id, d: d}}
			c.deliveries <- d
		}
	}
}

func (q *fakeQueue) nextConsumer() *fakeConsumer {
	for _, c := range q.consumers {
		if c.ch.closed {
			continue
		}

		if c.ch.prefetch == 0 || len(c.ch.unacked) < c.ch.prefetch {
			return c
		}
	}

	return nil
}

func (b *fakeBroker) requeueLocked(u *fakeUnacked) {
	q, ok := b.queues[u.queue]
	if !ok {
		return
	}

	m := u.msg
	m.d.Redelivered = true
	q.pending = append([]fakeMessage{m}, q.pending...)
}

type fakeConnection struct {
	broker *fakeBroker

	closed      bool
	channels    []*fakeChannel
	closeNotify []chan *amqp.Error
	blockNotify []chan amqp.Blocking
}

func (c *fakeConnection) Channel() (amqpChannel, error) {
	c.broker.mu.Lock()
	gate := c.broker.opening
	c.broker.mu.Unlock()

	if gate != nil {
		c.broker.mu.Lock()
		c.broker.waiting++
		c.broker.mu.Unlock()

		<-gate

		c.broker.mu.Lock()
		c.broker.waiting--
		c.broker.mu.Unlock()
	}

	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	if c.closed {
		return nil, amqp.ErrClosed
	}

	ch := &fakeChannel{
		broker:    c.broker,
		unacked:   make(map[uint64]*fakeUnacked),
		consumers: make(map[string]*fakeConsumer),
	}
	c.channels = append(c.channels, ch)

	return ch, nil
}

func (c *fakeConnection) Close() error {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	if c.closed {
		return amqp.ErrClosed
	}

	c.shutdownLocked(nil)
	c.broker.dispatchLocked()

	return nil
}

func (c *fakeConnection) IsClosed() bool {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	return c.closed
}

func (c *fakeConnection) NotifyClose(ch chan *amqp.Error) chan *amqp.Error {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	if c.closed {
		close(ch)

		return ch
	}

	c.closeNotify = append(c.closeNotify, ch)

	return ch
}

func (c *fakeConnection) NotifyBlocked(ch chan amqp.Blocking) chan amqp.Blocking {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	if c.closed {
		close(ch)

		return ch
	}

	c.blockNotify = append(c.blockNotify, ch)

	return ch
}

func (c *fakeConnection) block(active bool) {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	for _, n := range c.blockNotify {
		select {
		case n <- amqp.Blocking{Active: active, Reason: "low on memory"}:
		default:
		}
	}
}

func (c *fakeConnection) lastChannel() *fakeChannel {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	if len(c.channels) == 0 {
		return nil
	}

	return c.channels[len(c.channels)-1]
}

func (c *fakeConnection) openChannelCount() int {
	c.broker.mu.Lock()
	defer c.broker.mu.Unlock()

	open := 0
	for _, ch := range c.channels {
		if !ch.closed {
			open++
		}
	}

	return open
}

func (c *fakeConnection) shutdownLocked(err *amqp.Error) {
	c.closed = true

	for _, ch := range c.channels {
		if !ch.closed {
			ch.shutdownLocked(err)
		}
	}

	for _, n := range c.closeNotify {
		if err != nil {
			n <- err
		}

		close(n)
	}

	for _, n := range c.blockNotify {
		close(n)
	}

	c.closeNotify = nil
	c.blockNotify = nil
}

type fakeChannel struct {
	broker *fakeBroker

	closed      bool
	prefetch    int
	publishErr  error
	published   int
	unacked     map[uint64]*fakeUnacked
	consumers   map[string]*fakeConsumer
	closeNotify []chan *amqp.Error
	flowNotify  []chan bool
}

var _ amqpChannel = (*fakeChannel)(nil)

func (ch *fakeChannel) Close() error {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return amqp.ErrClosed
	}

	ch.shutdownLocked(nil)
	ch.broker.dispatchLocked()

	return nil
}

// fail simulates a channel-level exception raised by the broker.
func (ch *fakeChannel) fail() {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return
	}

	ch.shutdownLocked(&amqp.Error{Code: amqp.PreconditionFailed, Reason: "PRECONDITION_FAILED", Server: true})
	ch.broker.dispatchLocked()
}

func (ch *fakeChannel) shutdownLocked(err *amqp.Error) {
	ch.closed = true

	tags := make([]uint64, 0, len(ch.unacked))
	for tag := range ch.unacked {
		tags = append(tags, tag)
	}

	slices.Sort(tags)
	slices.Reverse(tags)

	for _, tag := range tags {
		ch.broker.requeueLocked(ch.unacked[tag])
	}

	clear(ch.unacked)

	for tag, c := range ch.consumers {
		ch.removeConsumerLocked(c)
		delete(ch.consumers, tag)
	}

	for _, n := range ch.closeNotify {
		if err != nil {
			n <- err
		}

		close(n)
	}

	for _, n := range ch.flowNotify {
		close(n)
	}

	ch.closeNotify = nil
	ch.flowNotify = nil
}

func (ch *fakeChannel) removeConsumerLocked(c *fakeConsumer) {
	if q, ok := ch.broker.queues[c.queue]; ok {
		q.consumers = slices.DeleteFunc(q.consumers, func(other *fakeConsumer) bool { return other == c })
	}

	close(c.deliveries)
}

func (ch *fakeChannel) setFlow(active bool) {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	for _, n := range ch.flowNotify {
		select {
		case n <- active:
		default:
		}
	}
}

func (ch *fakeChannel) setPublishErr(err error) {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	ch.publishErr = err
}

func (ch *fakeChannel) prefetchCount() int {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	return ch.prefetch
}

func (ch *fakeChannel) publishedCount() int {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	return ch.published
}

func (ch *fakeChannel) Cancel(consumer string, _ bool) error {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	c, ok := ch.consumers[consumer]
	if !ok {
		return nil
	}

	ch.removeConsumerLocked(c)
	delete(ch.consumers, consumer)

	return nil
}

func (ch *fakeChannel) Consume(queue, consumer string, _, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return nil, amqp.ErrClosed
	}

	q, ok := ch.broker.queues[queue]
	if !ok {
		return nil, &amqp.Error{Code: amqp.NotFound, Reason: "NOT_FOUND - no queue '" + queue + "'"}
	}

	c := &fakeConsumer{
		tag:        consumer,
		queue:      queue,
		ch:         ch,
		deliveries: make(chan amqp.Delivery, 256),
	}

	q.consumers = append(q.consumers, c)
	ch.consumers[consumer] = c

	ch.broker.dispatchLocked()

	return c.deliveries, nil
}

func (ch *fakeChannel) Get(queue string, autoAck bool) (amqp.Delivery, bool, error) {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return amqp.Delivery{}, false, amqp.ErrClosed
	}

	q, ok := ch.broker.queues[queue]
	if !ok || len(q.pending) == 0 {
		return amqp.Delivery{}, false, nil
	}

	m := q.pending[0]
	q.pending = q.pending[1:]

	ch.broker.nextTag++
	d := m.d
	d.DeliveryTag = ch.broker.nextTag
	d.Acknowledger = ch

	if !autoAck {
		ch.unacked[d.DeliveryTag] = &fakeUnacked{queue: queue, msg: fakeMessage{id: m.id, d: d}}
	}

	return d, true, nil
}

func (ch *fakeChannel) IsClosed() bool {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	return ch.closed
}

func (ch *fakeChannel) NotifyClose(c chan *amqp.Error) chan *amqp.Error {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		close(c)

		return c
	}

	ch.closeNotify = append(ch.closeNotify, c)

	return c
}

func (ch *fakeChannel) NotifyFlow(c chan bool) chan bool {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		close(c)

		return c
	}

	ch.flowNotify = append(ch.flowNotify, c)

	return c
}

func (ch *fakeChannel) PublishWithContext(ctx context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return amqp.ErrClosed
	}

	if ch.publishErr != nil {
		return ch.publishErr
	}

	ch.published++

	ch.broker.routeLocked(key, amqp.Delivery{
		Headers:      copyHeaders(msg.Headers),
		ContentType:  msg.ContentType,
		DeliveryMode: msg.DeliveryMode,
		Priority:     msg.Priority,
		MessageId:    msg.MessageId,
		Timestamp:    msg.Timestamp,
		RoutingKey:   key,
		Body:         slices.Clone(msg.Body),
	})
	ch.broker.dispatchLocked()

	return nil
}

func (ch *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, args amqp.Table) (amqp.Queue, error) {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return amqp.Queue{}, amqp.ErrClosed
	}

	q, ok := ch.broker.queues[name]
	if !ok {
		q = &fakeQueue{name: name, args: args}
		ch.broker.queues[name] = q
	}

	return amqp.Queue{Name: name, Messages: len(q.pending), Consumers: len(q.consumers)}, nil
}

func (ch *fakeChannel) Qos(prefetchCount, _ int, _ bool) error {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if ch.closed {
		return amqp.ErrClosed
	}

	ch.prefetch = prefetchCount

	return nil
}

func (ch *fakeChannel) Ack(tag uint64, _ bool) error {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	if _, ok := ch.unacked[tag]; !ok {
		return errUnknownDeliveryTag(ch.closed)
	}

	delete(ch.unacked, tag)
	ch.broker.dispatchLocked()

	return nil
}

func (ch *fakeChannel) Nack(tag uint64, _ bool, requeue bool) error {
	ch.broker.mu.Lock()
	defer ch.broker.mu.Unlock()

	u, ok := ch.unacked[tag]
	if !ok {
		return errUnknownDeliveryTag(ch.closed)
	}

	delete(ch.unacked, tag)

	if requeue {
		ch.broker.requeueLocked(u)
	}

	ch.broker.dispatchLocked()

	return nil
}

func (ch *fakeChannel) Reject(tag uint64, requeue bool) error {
	return ch.Nack(tag, false, requeue)
}

func errUnknownDeliveryTag(closed bool) error {
	if closed {
		return amqp.ErrClosed
	}

	return errors.New("unknown delivery tag")
}
