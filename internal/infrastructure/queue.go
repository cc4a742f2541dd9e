package infrastructure

import (
	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

// NewQueue builds the process-wide broker connection manager. It does not dial; callers connect
// through Publisher.Init or Consumer.Consume.
func NewQueue(cfg config.QueueConfig, app config.AppConfig, logger Logger) *queue.ConnectionManager {
	name := cfg.ConnectionName
	if name == "" {
		name = app.ServiceName
	}

	return queue.NewConnectionManager(
		queue.Config{
			URL:            cfg.URL,
			ConnectionName: name,
			Heartbeat:      cfg.Heartbeat,
			ConnectTimeout: cfg.ConnectTimeout,
			ReconnectDelay: cfg.ReconnectDelay,
			PrefetchCount:  cfg.PrefetchCount,
		},
		queue.WithLogger(queue.NewZerologAdapter(logger.Logger)),
	)
}

// NewRegistry returns the topology registry for the logical queues served by this process.
func NewRegistry(cfg config.RetryConfig) *queue.Registry {
	return queue.DefaultRegistry(cfg.Delay)
}

// RetryPolicy maps the retry configuration onto the consumer policy.
func RetryPolicy(cfg config.RetryConfig) queue.RetryPolicy {
	return queue.RetryPolicy{
		MaxRetries: cfg.MaxRetries,
	}
}
