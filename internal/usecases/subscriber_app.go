package usecases

import (
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/service"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
	"github.com/architeacher/svc-booking-messaging/internal/usecases/commands"
)

type (
	SubscriberApplication struct {
		Commands SubscriberCommands
	}

	SubscriberCommands struct {
		ProcessImageJobHandler     commands.ProcessImageJobHandler
		IndexSearchSnapshotHandler commands.IndexSearchSnapshotHandler
	}
)

func NewSubscriberApplication(
	subscriberService service.SubscriberService,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) *SubscriberApplication {
	return &SubscriberApplication{
		Commands: SubscriberCommands{
			ProcessImageJobHandler: commands.NewProcessImageJobHandler(
				subscriberService,
				logger,
				tracerProvider,
				metricsClient,
			),
			IndexSearchSnapshotHandler: commands.NewIndexSearchSnapshotHandler(
				subscriberService,
				logger,
				tracerProvider,
				metricsClient,
			),
		},
	}
}
