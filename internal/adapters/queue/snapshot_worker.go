package queue

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/usecases"
	"github.com/architeacher/svc-booking-messaging/internal/usecases/commands"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

var _ ports.MessageHandler = (*SnapshotWorker)(nil)

// SnapshotWorker forwards hotel search snapshots to the search indexer.
type SnapshotWorker struct {
	app    *usecases.SubscriberApplication
	logger infrastructure.Logger
}

func NewSnapshotWorker(app *usecases.SubscriberApplication, logger infrastructure.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		app:    app,
		logger: logger.Component("snapshot_worker"),
	}
}

func (w *SnapshotWorker) Queue() string {
	return queue.HotelSearchSnapshotEventsQueue
}

func (w *SnapshotWorker) Handle(ctx context.Context, msg queue.Message) error {
	var event domain.HotelSearchSnapshotEvent
	if err := msg.Unmarshal(&event); err != nil {
		w.logger.Error().
			Err(err).
			Str("message_id", msg.ID).
			Msg("failed to unmarshal search snapshot event")

		return queue.Permanent(domain.NewInvalidMessageError(msg.Queue, err))
	}

	_, err := w.app.Commands.IndexSearchSnapshotHandler.Handle(ctx, commands.IndexSearchSnapshotCommand{Event: event})
	if err != nil {
		w.logger.Warn().
			Err(err).
			Str("message_id", msg.ID).
			Str("snapshot_id", event.SnapshotID).
			Int("retry_count", msg.RetryCount).
			Msg("failed to index search snapshot")

		return classify(err)
	}

	return nil
}
