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

var _ ports.MessageHandler = (*ImageWorker)(nil)

// ImageWorker hands image processing jobs to the image service.
type ImageWorker struct {
	app    *usecases.SubscriberApplication
	logger infrastructure.Logger
}

func NewImageWorker(app *usecases.SubscriberApplication, logger infrastructure.Logger) *ImageWorker {
	return &ImageWorker{
		app:    app,
		logger: logger.Component("image_worker"),
	}
}

func (w *ImageWorker) Queue() string {
	return queue.ImageProcessingQueue
}

func (w *ImageWorker) Handle(ctx context.Context, msg queue.Message) error {
	var job domain.ImageProcessingJob
	if err := msg.Unmarshal(&job); err != nil {
		w.logger.Error().
			Err(err).
			Str("message_id", msg.ID).
			Msg("failed to unmarshal image processing job")

		return queue.Permanent(domain.NewInvalidMessageError(msg.Queue, err))
	}

	_, err := w.app.Commands.ProcessImageJobHandler.Handle(ctx, commands.ProcessImageJobCommand{Job: job})
	if err != nil {
		w.logger.Warn().
			Err(err).
			Str("message_id", msg.ID).
			Str("image_id", job.ImageID).
			Int("retry_count", msg.RetryCount).
			Msg("failed to process image job")

		return classify(err)
	}

	return nil
}

// classify marks errors that cannot succeed on redelivery so they skip the retry queue.
func classify(err error) error {
	if domain.IsPermanent(err) {
		return queue.Permanent(err)
	}

	return err
}
