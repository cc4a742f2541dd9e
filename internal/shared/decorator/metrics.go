package decorator

import (
	"context"
	"time"
)

const (
	kindCommand = "command"
	kindQuery   = "query"
)

type MetricsClient interface {
	RecordUseCase(ctx context.Context, kind, name string, success bool, duration time.Duration)
}

type commandMetricsDecorator[C any, R any] struct {
	base   CommandHandler[C, R]
	client MetricsClient
	name   string
}

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()

	defer func() {
		d.client.RecordUseCase(ctx, kindCommand, d.name, err == nil, time.Since(start))
	}()

	return d.base.Handle(ctx, cmd)
}

type queryMetricsDecorator[Q any, R any] struct {
	base   QueryHandler[Q, R]
	client MetricsClient
	name   string
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, q Q) (result R, err error) {
	start := time.Now()

	defer func() {
		d.client.RecordUseCase(ctx, kindQuery, d.name, err == nil, time.Since(start))
	}()

	return d.base.Execute(ctx, q)
}
