//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
)

//counterfeiter:generate -o ../mocks/idempotency_ledger.go . IdempotencyLedger

// IdempotencyLedger records externally delivered events so each one takes effect at most once.
type IdempotencyLedger interface {
	// FindByEventID returns domain.ErrEventNotFound when no record exists.
	FindByEventID(ctx context.Context, eventID string) (*domain.WebhookEvent, error)

	// Create inserts a new record. A concurrent insert of the same event id yields domain.ErrDuplicateEvent.
	Create(ctx context.Context, event *domain.WebhookEvent) error

	// UpdateStatus moves a record to status. Terminal statuses stamp processed_at.
	UpdateStatus(ctx context.Context, eventID string, status domain.WebhookEventStatus, errorMessage *string) error
}
