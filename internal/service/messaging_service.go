package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

const publisherBreakerName = "publisher"

type messagingService struct {
	publisher      ports.MessagePublisher
	registry       *queue.Registry
	circuitBreaker *gobreaker.CircuitBreaker
	cfg            config.PublishingConfig
	logger         infrastructure.Logger
	metrics        infrastructure.Metrics
}

func NewMessagingService(
	publisher ports.MessagePublisher,
	registry *queue.Registry,
	cfg config.PublishingConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) ports.MessagingService {
	logger = logger.Component("messaging")

	return &messagingService{
		publisher:      publisher,
		registry:       registry,
		circuitBreaker: infrastructure.NewCircuitBreaker(publisherBreakerName, cfg.CircuitBreaker, logger),
		cfg:            cfg,
		logger:         logger,
		metrics:        metrics,
	}
}

func (s *messagingService) Publish(ctx context.Context, req domain.PublishRequest) (string, error) {
	if err := s.checkQueue(req.Queue); err != nil {
		return "", err
	}

	if !json.Valid(req.Payload) {
		return "", domain.NewValidationError("payload must be valid JSON")
	}

	opts := publishOptions(req.Priority)
	if req.MessageID != "" {
		opts = append(opts, queue.WithMessageID(req.MessageID))
	}

	result, err := s.circuitBreaker.Execute(func() (any, error) {
		return s.publisher.Publish(ctx, req.Queue, req.Payload, opts...)
	})
	if err != nil {
		return "", s.publishFailed(ctx, req.Queue, err)
	}

	return result.(string), nil
}

func (s *messagingService) PublishBatch(ctx context.Context, req domain.BatchPublishRequest) ([]string, error) {
	if err := s.checkQueue(req.Queue); err != nil {
		return nil, err
	}

	if len(req.Payloads) == 0 {
		return nil, domain.NewValidationError("batch must contain at least one payload")
	}

	if len(req.Payloads) > s.cfg.MaxBatchSize {
		return nil, domain.NewValidationError(fmt.Sprintf("batch exceeds %d payloads", s.cfg.MaxBatchSize))
	}

	payloads := make([]any, 0, len(req.Payloads))
	for i, payload := range req.Payloads {
		if !json.Valid(payload) {
			return nil, domain.NewValidationError(fmt.Sprintf("payload %d must be valid JSON", i))
		}

		payloads = append(payloads, payload)
	}

	result, err := s.circuitBreaker.Execute(func() (any, error) {
		return s.publisher.PublishBatch(ctx, req.Queue, payloads, publishOptions(req.Priority)...)
	})
	if err != nil {
		return nil, s.publishFailed(ctx, req.Queue, err)
	}

	return result.([]string), nil
}

// ReplayDeadLetters moves up to limit parked messages back to the main queue. A non-positive limit
// means the configured maximum; larger limits are capped to it.
func (s *messagingService) ReplayDeadLetters(ctx context.Context, queueName string, limit int) (int, error) {
	if err := s.checkQueue(queueName); err != nil {
		return 0, err
	}

	if limit <= 0 || limit > s.cfg.MaxReplay {
		limit = s.cfg.MaxReplay
	}

	replayed, err := s.publisher.ReplayDeadLetters(ctx, queueName, limit)
	if err != nil {
		s.logger.Error().Err(err).
			Str("queue", queueName).
			Int("replayed", replayed).
			Msg("dead letter replay stopped early")

		return replayed, fmt.Errorf("failed to replay dead letters of %s: %w", queueName, err)
	}

	s.logger.Info().Str("queue", queueName).Int("replayed", replayed).Msg("dead letters replayed")

	return replayed, nil
}

func (s *messagingService) checkQueue(name string) error {
	if _, ok := s.registry.Lookup(name); !ok {
		return domain.NewUnknownQueueError(name)
	}

	return nil
}

func (s *messagingService) publishFailed(ctx context.Context, queueName string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.metrics.RecordPublishFailure(ctx, queueName, "circuit_open")
		s.logger.Warn().Str("queue", queueName).Msg("publisher circuit breaker is open")

		return domain.NewCircuitBreakerOpenError(publisherBreakerName, err)
	}

	s.metrics.RecordPublishFailure(ctx, queueName, publishErrorType(err))

	return fmt.Errorf("failed to publish to %s: %w", queueName, err)
}

func publishOptions(priority *int) []queue.PublishOption {
	if priority == nil {
		return nil
	}

	return []queue.PublishOption{queue.WithPriority(*priority)}
}

func publishErrorType(err error) string {
	switch {
	case errors.Is(err, queue.ErrNotConnected):
		return "not_connected"
	case errors.Is(err, queue.ErrClosed):
		return "closed"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	case errors.Is(err, queue.ErrPublish):
		return "publish"
	default:
		return "unknown"
	}
}
