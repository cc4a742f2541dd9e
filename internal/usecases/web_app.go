package usecases

import (
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/service"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
	"github.com/architeacher/svc-booking-messaging/internal/usecases/commands"
	"github.com/architeacher/svc-booking-messaging/internal/usecases/queries"
)

type (
	WebApplication struct {
		Commands Commands
		Queries  Queries
	}

	Commands struct {
		ProcessWebhookHandler    commands.ProcessWebhookHandler
		PublishMessageHandler    commands.PublishMessageHandler
		PublishBatchHandler      commands.PublishBatchHandler
		ReplayDeadLettersHandler commands.ReplayDeadLettersHandler
	}

	Queries struct {
		FetchReadinessReportQueryHandler queries.FetchReadinessReportQueryHandler
		FetchHealthReportQueryHandler    queries.FetchHealthReportQueryHandler
	}
)

func NewWebApplication(
	webhookProcessor ports.WebhookProcessor,
	messagingService ports.MessagingService,
	appService service.ApplicationService,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) *WebApplication {
	return &WebApplication{
		Commands: Commands{
			ProcessWebhookHandler: commands.NewProcessWebhookHandler(
				webhookProcessor, logger, tracerProvider, metricsClient,
			),
			PublishMessageHandler: commands.NewPublishMessageHandler(
				messagingService, logger, tracerProvider, metricsClient,
			),
			PublishBatchHandler: commands.NewPublishBatchHandler(
				messagingService, logger, tracerProvider, metricsClient,
			),
			ReplayDeadLettersHandler: commands.NewReplayDeadLettersHandler(
				messagingService, logger, tracerProvider, metricsClient,
			),
		},
		Queries: Queries{
			FetchReadinessReportQueryHandler: queries.NewFetchReadinessReportQueryHandler(
				appService, logger, tracerProvider, metricsClient,
			),
			FetchHealthReportQueryHandler: queries.NewFetchHealthReportQueryHandler(
				appService, logger, tracerProvider, metricsClient,
			),
		},
	}
}
