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
	PublishMessageCommand struct {
		Queue     string
		Payload   json.RawMessage
		Priority  *int
		MessageID string
	}

	PublishMessageHandler decorator.CommandHandler[PublishMessageCommand, string]

	publishMessageHandler struct {
		messaging ports.MessagingService
	}
)

func NewPublishMessageHandler(
	messaging ports.MessagingService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) PublishMessageHandler {
	return decorator.ApplyCommandDecorators[PublishMessageCommand, string](
		publishMessageHandler{
			messaging: messaging,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h publishMessageHandler) Handle(ctx context.Context, cmd PublishMessageCommand) (string, error) {
	return h.messaging.Publish(ctx, domain.PublishRequest{
		Queue:     cmd.Queue,
		Payload:   cmd.Payload,
		Priority:  cmd.Priority,
		MessageID: cmd.MessageID,
	})
}
