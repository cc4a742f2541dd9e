package commands

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/shared/decorator"
)

type (
	ReplayDeadLettersCommand struct {
		Queue string
		Limit int
	}

	ReplayDeadLettersHandler decorator.CommandHandler[ReplayDeadLettersCommand, int]

	replayDeadLettersHandler struct {
		messaging ports.MessagingService
	}
)

func NewReplayDeadLettersHandler(
	messaging ports.MessagingService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) ReplayDeadLettersHandler {
	return decorator.ApplyCommandDecorators[ReplayDeadLettersCommand, int](
		replayDeadLettersHandler{
			messaging: messaging,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h replayDeadLettersHandler) Handle(ctx context.Context, cmd ReplayDeadLettersCommand) (int, error) {
	return h.messaging.ReplayDeadLetters(ctx, cmd.Queue, cmd.Limit)
}
