package commands

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
)

type (
	ProcessWebhookCommand struct {
		Provider  string
		Payload   []byte
		Signature string
	}

	ProcessWebhookHandler decorator.CommandHandler[ProcessWebhookCommand, *domain.ProcessResult]

	processWebhookHandler struct {
		processor ports.WebhookProcessor
	}
)

func NewProcessWebhookHandler(
	processor ports.WebhookProcessor,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) ProcessWebhookHandler {
	return decorator.ApplyCommandDecorators[ProcessWebhookCommand, *domain.ProcessResult](
		processWebhookHandler{
			processor: processor,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h processWebhookHandler) Handle(ctx context.Context, cmd ProcessWebhookCommand) (*domain.ProcessResult, error) {
	return h.processor.Process(ctx, cmd.Provider, cmd.Payload, cmd.Signature)
}
