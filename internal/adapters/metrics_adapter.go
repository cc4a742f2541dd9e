package adapters

import (
	"context"
	"time"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

// MetricsAdapter feeds use case and broker events into the service metrics.
type MetricsAdapter struct {
	metrics infrastructure.Metrics
}

var (
	_ decorator.MetricsClient = (*MetricsAdapter)(nil)
	_ queue.Observer          = (*MetricsAdapter)(nil)
)

func NewMetricsAdapter(metrics infrastructure.Metrics) *MetricsAdapter {
	return &MetricsAdapter{
		metrics: metrics,
	}
}

func (m *MetricsAdapter) RecordUseCase(ctx context.Context, kind, name string, success bool, duration time.Duration) {
	m.metrics.RecordUseCase(ctx, kind, name, success, duration)
}

func (m *MetricsAdapter) MessagePublished(queueName string, priority uint8) {
	m.metrics.RecordMessagePublished(context.Background(), queueName, priority)
}

func (m *MetricsAdapter) MessageHandled(queueName string, outcome queue.Outcome, duration time.Duration) {
	m.metrics.RecordMessageHandled(context.Background(), queueName, string(outcome), duration)
}
