package decorator

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
)

type CommandHandler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// ApplyCommandDecorators wraps handler with logging, metrics and tracing, outermost first.
func ApplyCommandDecorators[C any, R any](
	handler CommandHandler[C, R],
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient MetricsClient,
) CommandHandler[C, R] {
	name := actionName(handler)

	return commandLoggingDecorator[C, R]{
		base: commandMetricsDecorator[C, R]{
			base: commandTracingDecorator[C, R]{
				base:   handler,
				tracer: tracerProvider.Tracer(instrumentationName),
				name:   name,
			},
			client: metricsClient,
			name:   name,
		},
		logger: logger,
		name:   name,
	}
}

func actionName(handler any) string {
	name := fmt.Sprintf("%T", handler)
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}

	return name
}
