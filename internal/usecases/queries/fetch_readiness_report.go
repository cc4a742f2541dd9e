package queries

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/service"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
)

type (
	FetchReadinessReportQuery struct{}

	FetchReadinessReportQueryHandler decorator.QueryHandler[FetchReadinessReportQuery, *domain.ReadinessResult]

	fetchReadinessReportQueryHandler struct {
		appService service.ApplicationService
	}
)

func NewFetchReadinessReportQueryHandler(
	appService service.ApplicationService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) FetchReadinessReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchReadinessReportQuery, *domain.ReadinessResult](
		fetchReadinessReportQueryHandler{
			appService: appService,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h fetchReadinessReportQueryHandler) Execute(ctx context.Context, _ FetchReadinessReportQuery) (*domain.ReadinessResult, error) {
	return h.appService.FetchReadinessReport(ctx)
}
