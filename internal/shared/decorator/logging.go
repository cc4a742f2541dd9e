package decorator

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
)

type commandLoggingDecorator[C any, R any] struct {
	base   CommandHandler[C, R]
	logger infrastructure.Logger
	name   string
}

func (d commandLoggingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	d.logger.Debug().Str("command", d.name).Msg("executing command")

	defer func() {
		if err != nil {
			d.logger.Error().Err(err).Str("command", d.name).Msg("failed to execute command")

			return
		}

		d.logger.Debug().Str("command", d.name).Msg("command executed successfully")
	}()

	return d.base.Handle(ctx, cmd)
}

type queryLoggingDecorator[Q any, R any] struct {
	base   QueryHandler[Q, R]
	logger infrastructure.Logger
	name   string
}

func (d queryLoggingDecorator[Q, R]) Execute(ctx context.Context, q Q) (result R, err error) {
	d.logger.Debug().Str("query", d.name).Msg("executing query")

	defer func() {
		if err != nil {
			d.logger.Error().Err(err).Str("query", d.name).Msg("failed to execute query")
		}
	}()

	return d.base.Execute(ctx, q)
}
