package infrastructure

import (
	"context"
	"net/http"
	"time"
)

type NoOpMetrics struct{}

func (n *NoOpMetrics) RecordHTTPRequest(_ context.Context, _, _ string, _ int, _ time.Duration, _, _ int64) {
}

func (n *NoOpMetrics) RecordMessagePublished(_ context.Context, _ string, _ uint8) {
}

func (n *NoOpMetrics) RecordPublishFailure(_ context.Context, _, _ string) {
}

func (n *NoOpMetrics) RecordMessageHandled(_ context.Context, _, _ string, _ time.Duration) {
}

func (n *NoOpMetrics) RecordWebhookEvent(_ context.Context, _, _, _ string, _ time.Duration) {
}

func (n *NoOpMetrics) RecordCollaboratorCall(_ context.Context, _ string, _ bool, _ time.Duration) {
}

func (n *NoOpMetrics) RecordDetachedTask(_ context.Context, _ string, _ bool) {
}

func (n *NoOpMetrics) RecordUseCase(_ context.Context, _, _ string, _ bool, _ time.Duration) {
}

func (n *NoOpMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (n *NoOpMetrics) Shutdown(_ context.Context) error {
	return nil
}

var (
	_ Metrics = (*NoOpMetrics)(nil)
	_ Metrics = (*OTELMetrics)(nil)
)
