package decorator

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/architeacher/svc-booking-messaging/internal/usecases"

type commandTracingDecorator[C any, R any] struct {
	base   CommandHandler[C, R]
	tracer trace.Tracer
	name   string
}

func (d commandTracingDecorator[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	ctx, span := d.tracer.Start(ctx, "command."+d.name)
	defer span.End()

	result, err := d.base.Handle(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}

type queryTracingDecorator[Q any, R any] struct {
	base   QueryHandler[Q, R]
	tracer trace.Tracer
	name   string
}

func (d queryTracingDecorator[Q, R]) Execute(ctx context.Context, q Q) (R, error) {
	ctx, span := d.tracer.Start(ctx, "query."+d.name)
	defer span.End()

	result, err := d.base.Execute(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}
