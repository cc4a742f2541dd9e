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
	IndexSearchSnapshotCommand struct {
		Event domain.HotelSearchSnapshotEvent
	}

	IndexSearchSnapshotHandler decorator.CommandHandler[IndexSearchSnapshotCommand, struct{}]

	indexSearchSnapshotHandler struct {
		subscriberService service.SubscriberService
	}
)

func NewIndexSearchSnapshotHandler(
	subscriberService service.SubscriberService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) IndexSearchSnapshotHandler {
	return decorator.ApplyCommandDecorators[IndexSearchSnapshotCommand, struct{}](
		indexSearchSnapshotHandler{
			subscriberService: subscriberService,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h indexSearchSnapshotHandler) Handle(ctx context.Context, cmd IndexSearchSnapshotCommand) (struct{}, error) {
	return struct{}{}, h.subscriberService.IndexSearchSnapshot(ctx, cmd.Event)
}
