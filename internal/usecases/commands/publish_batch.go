package commands

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
)

type (
	PublishBatchCommand struct {
		Queue    string
		Payloads []json.RawMessage
		Priority *int
	}

	PublishBatchHandler decorator.CommandHandler[PublishBatchCommand, []string]

	publishBatchHandler struct {
		messaging ports.MessagingService
	}
)

func NewPublishBatchHandler(
	messaging ports.MessagingService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) PublishBatchHandler {
	return decorator.ApplyCommandDecorators[PublishBatchCommand, []string](
		publishBatchHandler{
			messaging: messaging,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h publishBatchHandler) Handle(ctx context.Context, cmd PublishBatchCommand) ([]string, error) {
	return h.messaging.PublishBatch(ctx, domain.BatchPublishRequest{
		Queue:    cmd.Queue,
		Payloads: cmd.Payloads,
		Priority: cmd.Priority,
	})
}
