package queue

import (
	"time"
)

type connectionOptions struct {
	timeout        *time.Duration
	reconnectDelay *time.Duration
	heartbeat      *time.Duration
	prefetchCount  *int
	logger         Logger
	dial           dialFunc
}

// ConnectionOption configures a ConnectionManager.
type ConnectionOption func(options *connectionOptions)

func (o connectionOptions) apply(cfg Config) Config {
	if o.timeout != nil {
		cfg.ConnectTimeout = *o.timeout
	}

	if o.reconnectDelay != nil {
		cfg.ReconnectDelay = *o.reconnectDelay
	}

	if o.heartbeat != nil {
		cfg.Heartbeat = *o.heartbeat
	}

	if o.prefetchCount != nil {
		cfg.PrefetchCount = *o.prefetchCount
	}

	return cfg
}

// WithLogger returns a ConnectionOption which sets the logger used by the manager.
func WithLogger(l Logger) ConnectionOption {
	return func(o *connectionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConnectionTimeout returns a ConnectionOption which sets the timeout used when establishing a connection.
func WithConnectionTimeout(timeout time.Duration) ConnectionOption {
	return func(o *connectionOptions) {
		o.timeout = &timeout
	}
}

// WithReconnectDelay returns a ConnectionOption which sets the delay between reconnection attempts.
func WithReconnectDelay(delay time.Duration) ConnectionOption {
	return func(o *connectionOptions) {
		o.reconnectDelay = &delay
	}
}

// WithHeartbeat returns a ConnectionOption which sets the heartbeat interval.
func WithHeartbeat(interval time.Duration) ConnectionOption {
	return func(o *connectionOptions) {
		o.heartbeat = &interval
	}
}

// WithPrefetchCount returns a ConnectionOption which sets the per-channel prefetch count.
func WithPrefetchCount(count int) ConnectionOption {
	return func(o *connectionOptions) {
		o.prefetchCount = &count
	}
}

func withDialer(dial dialFunc) ConnectionOption {
	return func(o *connectionOptions) {
		o.dial = dial
	}
}

// publisherOptions configure a NewPublisher call.
type publisherOptions struct {
	timeout     time.Duration
	channelName string
	logger      Logger
	observer    Observer
	newID       func() string
	now         func() time.Time
}

// PublisherOption configures a Publisher.
type PublisherOption func(options *publisherOptions)

const (
	publishingTimeout    = 3 * time.Second
	publisherChannelName = "publisher"
)

// WithPublishingTimeout returns a PublisherOption which sets the timeout used when
// publishing the message.
func WithPublishingTimeout(d time.Duration) PublisherOption {
	return func(o *publisherOptions) {
		o.timeout = d
	}
}

// WithPublisherLogger returns a PublisherOption which sets the publisher logger.
func WithPublisherLogger(l Logger) PublisherOption {
	return func(o *publisherOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPublisherObserver returns a PublisherOption which reports published messages.
func WithPublisherObserver(observer Observer) PublisherOption {
	return func(o *publisherOptions) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func defaultPublisherOptions() publisherOptions {
	return publisherOptions{
		timeout:     publishingTimeout,
		channelName: publisherChannelName,
		logger:      nopLogger{},
		observer:    nopObserver{},
		newID:       newMessageID,
		now:         time.Now,
	}
}

// publishOptions configure a single Publish call.
type publishOptions struct {
	priority  int
	messageID string
	headers   map[string]any
}

// PublishOption configures a single Publish or PublishBatch call.
type PublishOption func(*publishOptions)

// DefaultPriority is used when no priority is supplied.
const DefaultPriority = 5

// WithPriority sets the message priority. Values outside 0..10 are clamped.
func WithPriority(priority int) PublishOption {
	return func(o *publishOptions) {
		o.priority = priority
	}
}

// WithMessageID sets the message id; it is preserved unchanged end to end.
func WithMessageID(id string) PublishOption {
	return func(o *publishOptions) {
		o.messageID = id
	}
}

// WithHeaders adds application headers to the message.
func WithHeaders(headers map[string]any) PublishOption {
	return func(o *publishOptions) {
		o.headers = headers
	}
}

func resolvePublishOptions(opts []PublishOption) publishOptions {
	options := publishOptions{priority: DefaultPriority}

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

type consumerOptions struct {
	policy         RetryPolicy
	handlerTimeout time.Duration
	logger         Logger
	observer       Observer
	publishTimeout time.Duration
}

// ConsumerOption configures a Consumer.
type ConsumerOption func(*consumerOptions)

// WithRetryPolicy returns a ConsumerOption which sets the retry bound.
func WithRetryPolicy(policy RetryPolicy) ConsumerOption {
	return func(o *consumerOptions) {
		o.policy = policy
	}
}

// WithHandlerTimeout returns a ConsumerOption which fails handlers running longer than d.
// Zero disables the timeout.
func WithHandlerTimeout(d time.Duration) ConsumerOption {
	return func(o *consumerOptions) {
		o.handlerTimeout = d
	}
}

// WithConsumingLogger returns a ConsumerOption which sets the logger when consuming messages.
func WithConsumingLogger(logger Logger) ConsumerOption {
	return func(o *consumerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConsumerObserver returns a ConsumerOption which reports handling outcomes.
func WithConsumerObserver(observer Observer) ConsumerOption {
	return func(o *consumerOptions) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func defaultConsumerOptions() consumerOptions {
	return consumerOptions{
		policy:         DefaultRetryPolicy(),
		logger:         nopLogger{},
		observer:       nopObserver{},
		publishTimeout: publishingTimeout,
	}
}
