package commands

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/service"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
)

type (
	ProcessImageJobCommand struct {
		Job domain.ImageProcessingJob
	}

	ProcessImageJobHandler decorator.CommandHandler[ProcessImageJobCommand, struct{}]

	processImageJobHandler struct {
		subscriberService service.SubscriberService
	}
)

func NewProcessImageJobHandler(
	subscriberService service.SubscriberService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) ProcessImageJobHandler {
	return decorator.ApplyCommandDecorators[ProcessImageJobCommand, struct{}](
		processImageJobHandler{
			subscriberService: subscriberService,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h processImageJobHandler) Handle(ctx context.Context, cmd ProcessImageJobCommand) (struct{}, error) {
	return struct{}{}, h.subscriberService.ProcessImageJob(ctx, cmd.Job)
}
