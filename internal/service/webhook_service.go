package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const (
	webhookStatusProcessed = "processed"
	webhookStatusDuplicate = "duplicate"
	webhookStatusRejected  = "rejected"
	webhookStatusFailed    = "failed"

	notificationTaskName = "payment_notification"
)

type webhookService struct {
	ledger   ports.IdempotencyLedger
	booking  ports.BookingService
	notifier ports.Notifier
	detached *DetachedTasks
	verifier *SignatureVerifier
	secrets  *config.WebhookSecrets
	cfg      config.WebhookConfig
	logger   infrastructure.Logger
	metrics  infrastructure.Metrics
}

func NewWebhookService(
	ledger ports.IdempotencyLedger,
	booking ports.BookingService,
	notifier ports.Notifier,
	detached *DetachedTasks,
	cfg config.WebhookConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) ports.WebhookProcessor {
	secrets := cfg.SigningSecrets
	if secrets == nil {
		secrets = config.NewWebhookSecrets(cfg.Secrets)
	}

	return &webhookService{
		ledger:   ledger,
		booking:  booking,
		notifier: notifier,
		detached: detached,
		verifier: NewSignatureVerifier(cfg.Tolerance),
		secrets:  secrets,
		cfg:      cfg,
		logger:   logger.Component("webhook"),
		metrics:  metrics,
	}
}

// Process verifies, deduplicates and applies one provider event. A record that already exists in
// the ledger, in any status, short-circuits as a duplicate without touching the booking service.
func (s *webhookService) Process(ctx context.Context, provider string, payload []byte, signature string) (*domain.ProcessResult, error) {
	start := time.Now()
	provider = strings.ToLower(provider)

	if err := s.verify(provider, payload, signature); err != nil {
		s.metrics.RecordWebhookEvent(ctx, provider, "", webhookStatusRejected, time.Since(start))

		return nil, err
	}

	event, err := domain.ParsePaymentEvent(payload)
	if err != nil {
		s.metrics.RecordWebhookEvent(ctx, provider, "", webhookStatusRejected, time.Since(start))

		return nil, domain.NewMalformedEventError(provider, err)
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("webhook.provider", provider),
		attribute.String("webhook.event_id", event.ID),
		attribute.String("webhook.event_type", event.Type),
	)

	result, err := s.apply(ctx, provider, event, payload)

	status := webhookStatusProcessed
	switch {
	case err != nil:
		status = webhookStatusFailed
	case result.Duplicate:
		status = webhookStatusDuplicate
	}

	s.metrics.RecordWebhookEvent(ctx, provider, event.Type, status, time.Since(start))

	return result, err
}

func (s *webhookService) verify(provider string, payload []byte, signature string) error {
	secret, ok := s.secrets.Lookup(provider)
	if !ok {
		if s.cfg.RequireSignature {
			return domain.NewUnknownProviderError(provider)
		}

		s.logger.Warn().Str("provider", provider).Msg("accepting unsigned webhook, no secret configured")

		return nil
	}

	if err := s.verifier.Verify(payload, signature, secret); err != nil {
		s.logger.Warn().Err(err).Str("provider", provider).Msg("webhook signature verification failed")

		return domain.NewInvalidSignatureError(provider, err)
	}

	return nil
}

func (s *webhookService) apply(ctx context.Context, provider string, event domain.PaymentEvent, payload []byte) (*domain.ProcessResult, error) {
	duplicate := &domain.ProcessResult{EventID: event.ID, Duplicate: true}

	existing, err := s.ledger.FindByEventID(ctx, event.ID)
	switch {
	case err == nil:
		s.logger.Info().
			Str("event_id", event.ID).
			Str("status", string(existing.Status)).
			Msg("duplicate webhook event, skipping")

		return duplicate, nil
	case !errors.Is(err, domain.ErrEventNotFound):
		return nil, fmt.Errorf("failed to look up webhook event %s: %w", event.ID, err)
	}

	record := &domain.WebhookEvent{
		EventID:   event.ID,
		EventType: event.Type,
		Provider:  provider,
		Payload:   string(payload),
		Status:    domain.WebhookEventStatusProcessing,
	}

	if err := s.ledger.Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			s.logger.Info().Str("event_id", event.ID).Msg("webhook event recorded concurrently, skipping")

			return duplicate, nil
		}

		return nil, fmt.Errorf("failed to record webhook event %s: %w", event.ID, err)
	}

	if err := s.booking.ApplyPayment(ctx, event); err != nil {
		msg := err.Error()
		if updateErr := s.ledger.UpdateStatus(ctx, event.ID, domain.WebhookEventStatusFailed, &msg); updateErr != nil {
			s.logger.Error().Err(updateErr).Str("event_id", event.ID).Msg("failed to mark webhook event as failed")
		}

		return nil, fmt.Errorf("failed to apply payment event %s: %w", event.ID, err)
	}

	if err := s.ledger.UpdateStatus(ctx, event.ID, domain.WebhookEventStatusProcessed, nil); err != nil {
		s.logger.Error().Err(err).Str("event_id", event.ID).Msg("failed to mark webhook event as processed")
	}

	if event.Notifiable() {
		notification := domain.PaymentNotification{
			BookingID: event.BookingID(),
			Email:     event.GuestEmail(),
			EventType: event.Type,
			Amount:    event.Data.Object.Amount,
			Currency:  event.Data.Object.Currency,
		}

		s.detached.Go(ctx, notificationTaskName, func(ctx context.Context) error {
			return s.notifier.NotifyPayment(ctx, notification)
		})
	}

	s.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("provider", provider).
		Msg("webhook event processed")

	return &domain.ProcessResult{EventID: event.ID}, nil
}
