package service

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

type (
	// SubscriberService carries out the work behind each consumed queue.
	SubscriberService interface {
		ProcessImageJob(ctx context.Context, job domain.ImageProcessingJob) error
		IndexSearchSnapshot(ctx context.Context, event domain.HotelSearchSnapshotEvent) error
	}

	subscriberService struct {
		images  ports.ImageProcessor
		indexer ports.SearchIndexer
		logger  infrastructure.Logger
	}
)

func NewSubscriberService(
	images ports.ImageProcessor,
	indexer ports.SearchIndexer,
	logger infrastructure.Logger,
) SubscriberService {
	return &subscriberService{
		images:  images,
		indexer: indexer,
		logger:  logger.Component("subscriber"),
	}
}

func (s *subscriberService) ProcessImageJob(ctx context.Context, job domain.ImageProcessingJob) error {
	if err := job.Validate(); err != nil {
		return domain.NewInvalidMessageError(queue.ImageProcessingQueue, err)
	}

	start := time.Now()

	if err := s.images.ProcessImage(ctx, job); err != nil {
		return fmt.Errorf("failed to process image %s: %w", job.ImageID, err)
	}

	s.logger.Info().
		Str("image_id", job.ImageID).
		Str("hotel_id", job.HotelID).
		Int("variants", len(job.Variants)).
		Dur("duration", time.Since(start)).
		Msg("image processed")

	return nil
}

func (s *subscriberService) IndexSearchSnapshot(ctx context.Context, event domain.HotelSearchSnapshotEvent) error {
	if err := event.Validate(); err != nil {
		return domain.NewInvalidMessageError(queue.HotelSearchSnapshotEventsQueue, err)
	}

	if len(event.Hotels) == 0 {
		s.logger.Debug().Str("snapshot_id", event.SnapshotID).Msg("empty search snapshot, nothing to index")

		return nil
	}

	if err := s.indexer.IndexSnapshot(ctx, event); err != nil {
		return fmt.Errorf("failed to index search snapshot %s: %w", event.SnapshotID, err)
	}

	s.logger.Info().
		Str("snapshot_id", event.SnapshotID).
		Str("search_id", event.SearchID).
		Int("hotels", len(event.Hotels)).
		Msg("search snapshot indexed")

	return nil
}
