package queue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpConnection is used mainly to be able to generate mocks for the AMQP connection.
type amqpConnection interface {
	io.Closer

	Channel() (amqpChannel, error)
	IsClosed() bool
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	NotifyBlocked(c chan amqp.Blocking) chan amqp.Blocking
}

type dialFunc func(url string, cfg amqp.Config) (amqpConnection, error)

// connectionAdapter narrows *amqp.Connection to amqpConnection.
type connectionAdapter struct {
	*amqp.Connection
}

func (c connectionAdapter) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func dialAMQP(url string, cfg amqp.Config) (amqpConnection, error) {
	conn, err := amqp.DialConfig(url, cfg)
	if err != nil {
		return nil, err
	}

	return connectionAdapter{Connection: conn}, nil
}

// connectAttempt is a one-shot broadcast: done is closed once err is final.
type connectAttempt struct {
	done chan struct{}
	err  error
}

// ConnectionManager owns the single broker connection of a process and a keyed set of
// channels multiplexed over it.
type ConnectionManager struct {
	cfg    Config
	dial   dialFunc
	logger Logger

	connected atomic.Bool

	mu         sync.Mutex
	conn       amqpConnection
	generation uint64
	connecting *connectAttempt
	channels   map[string]*ChannelWrapper
	ready      chan struct{}
	blocked    bool
	closed     bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewConnectionManager creates a manager. No connection is made until Connect or Channel is called.
func NewConnectionManager(cfg Config, opts ...ConnectionOption) *ConnectionManager {
	options := connectionOptions{
		logger: nopLogger{},
		dial:   dialAMQP,
	}

	for _, opt := range opts {
		opt(&options)
	}

	cfg = options.apply(cfg).withDefaults()

	return &ConnectionManager{
		cfg:      cfg,
		dial:     options.dial,
		logger:   options.logger,
		channels: make(map[string]*ChannelWrapper),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Connect establishes the broker connection. It returns immediately when a live connection
// exists and joins an attempt that is already in flight instead of dialing twice.
func (m *ConnectionManager) Connect(ctx context.Context) error {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()

		return ErrClosed
	}

	if m.conn != nil && !m.conn.IsClosed() {
		m.mu.Unlock()

		return nil
	}

	if attempt := m.connecting; attempt != nil {
		m.mu.Unlock()

		select {
		case <-attempt.done:
			return attempt.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	attempt := &connectAttempt{done: make(chan struct{})}
	m.connecting = attempt
	m.mu.Unlock()

	m.logger.Debug().Str("url", SanitizeURL(m.cfg.URL)).Msg("connecting to broker")

	conn, err := m.dial(m.cfg.URL, m.cfg.amqpConfig())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.connecting = nil

	switch {
	case err != nil:
		attempt.err = fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	case m.closed:
		_ = conn.Close()
		attempt.err = ErrClosed
	default:
		m.install(conn)
	}

	close(attempt.done)

	return attempt.err
}

// install must be called with mu held.
func (m *ConnectionManager) install(conn amqpConnection) {
	if m.conn != nil {
		m.dropLocked()
	}

	m.conn = conn
	m.generation++
	m.connected.Store(true)

	closeCh := conn.NotifyClose(make(chan *amqp.Error, 1))
	blockedCh := conn.NotifyBlocked(make(chan amqp.Blocking, 1))

	m.wg.Add(1)

	go m.supervise(m.generation, closeCh, blockedCh)

	close(m.ready)

	m.logger.Info().
		Str("url", SanitizeURL(m.cfg.URL)).
		Uint64("generation", m.generation).
		Msg("connected to broker")
}

// supervise owns the lifecycle of one connection generation. When the connection closes it
// invalidates every channel and reconnects after the configured delay.
func (m *ConnectionManager) supervise(generation uint64, closeCh <-chan *amqp.Error, blockedCh <-chan amqp.Blocking) {
	defer m.wg.Done()

	for {
		select {
		case <-m.done:
			return

		case b, ok := <-blockedCh:
			if !ok {
				blockedCh = nil

				continue
			}

			m.setBlocked(b)

		case amqpErr, ok := <-closeCh:
			if ok && amqpErr != nil {
				m.logger.Error().
					Err(amqpErr).
					Uint64("generation", generation).
					Msg("broker connection closed")
			}

			if !m.invalidate(generation) {
				return
			}

			m.reconnect()

			return
		}
	}
}

// invalidate drops the connection and all channels of generation. It reports whether the
// manager should reconnect.
func (m *ConnectionManager) invalidate(generation uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}

	if m.generation != generation || m.conn == nil {
		return false
	}

	m.dropLocked()

	return true
}

// dropLocked forgets the current connection and every channel opened on it.
func (m *ConnectionManager) dropLocked() {
	m.conn = nil
	m.connected.Store(false)
	m.blocked = false
	m.ready = make(chan struct{})

	for name, ch := range m.channels {
		ch.invalidate()
		delete(m.channels, name)
	}
}

func (m *ConnectionManager) reconnect() {
	timer := time.NewTimer(m.cfg.ReconnectDelay)
	defer timer.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-m.done:
			return
		case <-timer.C:
		}

		err := m.Connect(context.Background())
		if err == nil {
			m.logger.Info().Int("attempt", attempt).Msg("reconnected to broker")

			return
		}

		if errors.Is(err, ErrClosed) {
			return
		}

		m.logger.Error().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", m.cfg.ReconnectDelay).
			Msg("failed to reconnect to broker")

		timer.Reset(m.cfg.ReconnectDelay)
	}
}

func (m *ConnectionManager) setBlocked(b amqp.Blocking) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blocked = b.Active

	for _, ch := range m.channels {
		ch.gate.setBlocked(b.Active)
	}

	if b.Active {
		m.logger.Warn().Str("reason", b.Reason).Msg("broker blocked the connection")

		return
	}

	m.logger.Info().Msg("broker unblocked the connection")
}

// Channel returns the cached channel for name, opening a new one on the current connection
// when none is cached or the cached one has failed.
func (m *ConnectionManager) Channel(ctx context.Context, name string) (*ChannelWrapper, error) {
	if ch := m.cached(name); ch != nil {
		return ch, nil
	}

	if err := m.Connect(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()

	if ch, ok := m.channels[name]; ok && !ch.IsClosed() {
		m.mu.Unlock()

		return ch, nil
	}

	if m.closed {
		m.mu.Unlock()

		return nil, ErrClosed
	}

	conn, generation := m.conn, m.generation
	m.mu.Unlock()

	if conn == nil {
		return nil, ErrNotConnected
	}

	// Opening a channel is a broker round trip; m.mu stays free for publishers and the supervisor.
	raw, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel %q: %w", name, err)
	}

	if err := raw.Qos(m.cfg.PrefetchCount, 0, false); err != nil {
		_ = raw.Close()

		return nil, fmt.Errorf("failed to set prefetch on channel %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		_ = raw.Close()

		return nil, ErrClosed
	}

	if m.conn != conn || m.generation != generation {
		_ = raw.Close()

		return nil, fmt.Errorf("connection replaced while opening channel %q: %w", name, ErrNotConnected)
	}

	if existing, ok := m.channels[name]; ok && !existing.IsClosed() {
		_ = raw.Close()

		return existing, nil
	}

	ch := newChannelWrapper(name, generation, raw)
	if m.blocked {
		ch.gate.setBlocked(true)
	}

	m.channels[name] = ch

	go m.watchChannel(ch, raw.NotifyClose(make(chan *amqp.Error, 1)), raw.NotifyFlow(make(chan bool, 1)))

	m.logger.Debug().
		Str("channel", name).
		Uint64("generation", m.generation).
		Msg("channel opened")

	return ch, nil
}

func (m *ConnectionManager) cached(name string) *ChannelWrapper {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.channels[name]
	if !ok || ch.IsClosed() {
		return nil
	}

	return ch
}

func (m *ConnectionManager) watchChannel(ch *ChannelWrapper, closeCh <-chan *amqp.Error, flowCh <-chan bool) {
	for {
		select {
		case active, ok := <-flowCh:
			if !ok {
				flowCh = nil

				continue
			}

			ch.gate.setFlow(active)

			m.logger.Warn().
				Str("channel", ch.name).
				Str("flow", flowState(active)).
				Msg("broker changed channel flow")

		case amqpErr, ok := <-closeCh:
			if ok && amqpErr != nil {
				m.logger.Error().
					Err(amqpErr).
					Str("channel", ch.name).
					Msg("channel closed by broker")
			}

			m.evict(ch)

			return
		}
	}
}

func flowState(active bool) string {
	if active {
		return "active"
	}

	return "paused"
}

func (m *ConnectionManager) evict(ch *ChannelWrapper) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.channels[ch.name]; ok && current == ch {
		delete(m.channels, ch.name)
	}

	ch.invalidate()
}

// CloseChannel closes and evicts the named channel. Errors are logged, not returned.
func (m *ConnectionManager) CloseChannel(name string) {
	m.mu.Lock()
	ch, ok := m.channels[name]
	delete(m.channels, name)
	m.mu.Unlock()

	if !ok {
		return
	}

	if err := ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		m.logger.Error().Err(err).Str("channel", name).Msg("failed to close channel")
	}
}

// Close closes every cached channel, then the connection, and stops reconnecting.
func (m *ConnectionManager) Close() error {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()

		return nil
	}

	m.closed = true
	close(m.done)

	channels := m.channels
	m.channels = make(map[string]*ChannelWrapper)

	conn := m.conn
	m.conn = nil
	m.connected.Store(false)
	m.mu.Unlock()

	for name, ch := range channels {
		if err := ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			m.logger.Error().Err(err).Str("channel", name).Msg("failed to close channel")
		}
	}

	var err error
	if conn != nil && !conn.IsClosed() {
		if closeErr := conn.Close(); closeErr != nil && !errors.Is(closeErr, amqp.ErrClosed) {
			err = fmt.Errorf("failed to close broker connection: %w", closeErr)
		}
	}

	m.wg.Wait()

	m.logger.Info().Msg("broker connection closed")

	return err
}

// IsConnected reports whether a live connection is installed.
func (m *ConnectionManager) IsConnected() bool {
	return m.connected.Load()
}

// Ready returns a channel that is closed while a connection is installed. After a
// connection loss a new, open channel is returned until the supervisor reconnects.
func (m *ConnectionManager) Ready() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ready
}

// Generation returns the number of connections established so far.
func (m *ConnectionManager) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.generation
}

// ReconnectDelay is the fixed delay between reconnection attempts.
func (m *ConnectionManager) ReconnectDelay() time.Duration {
	return m.cfg.ReconnectDelay
}
