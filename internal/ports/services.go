//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
)

//counterfeiter:generate -o ../mocks/webhook_processor.go . WebhookProcessor
//counterfeiter:generate -o ../mocks/messaging_service.go . MessagingService

type (
	// WebhookProcessor runs the idempotent processing protocol for one inbound provider event.
	WebhookProcessor interface {
		Process(ctx context.Context, provider string, payload []byte, signature string) (*domain.ProcessResult, error)
	}

	// MessagingService exposes publishing and dead-letter replay to the HTTP API.
	MessagingService interface {
		Publish(ctx context.Context, req domain.PublishRequest) (string, error)
		PublishBatch(ctx context.Context, req domain.BatchPublishRequest) ([]string, error)
		ReplayDeadLetters(ctx context.Context, queue string, limit int) (int, error)
	}
)
