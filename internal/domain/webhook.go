package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type WebhookEventStatus string

const (
	WebhookEventStatusProcessing WebhookEventStatus = "processing"
	WebhookEventStatusProcessed  WebhookEventStatus = "processed"
	WebhookEventStatusFailed     WebhookEventStatus = "failed"
)

// IsTerminal reports whether no further transition is expected from s.
func (s WebhookEventStatus) IsTerminal() bool {
	return s == WebhookEventStatusProcessed || s == WebhookEventStatusFailed
}

func (s WebhookEventStatus) IsValid() bool {
	switch s {
	case WebhookEventStatusProcessing, WebhookEventStatusProcessed, WebhookEventStatusFailed:
		return true
	default:
		return false
	}
}

// WebhookEvent is the idempotency record of one externally delivered event, unique per EventID.
type WebhookEvent struct {
	ID           uuid.UUID          `json:"id"`
	EventID      string             `json:"event_id"`
	EventType    string             `json:"event_type"`
	Provider     string             `json:"provider"`
	Payload      string             `json:"payload"`
	Status       WebhookEventStatus `json:"status"`
	ErrorMessage *string            `json:"error_message,omitempty"`
	ProcessedAt  *time.Time         `json:"processed_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ProcessResult is what the webhook entry point reports back to the provider.
type ProcessResult struct {
	EventID   string `json:"event_id"`
	Duplicate bool   `json:"duplicate"`
}

// PaymentEvent is the provider envelope of a payment notification. Only the fields needed for
// idempotency and routing are decoded.
type PaymentEvent struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Created int64       `json:"created"`
	Data    PaymentData `json:"data"`
}

type PaymentData struct {
	Object PaymentObject `json:"object"`
}

type PaymentObject struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
}

const (
	PaymentSucceeded = "payment_intent.succeeded"
	PaymentFailed    = "payment_intent.payment_failed"
	ChargeRefunded   = "charge.refunded"

	metadataBookingID  = "booking_id"
	metadataGuestEmail = "guest_email"
)

// ParsePaymentEvent decodes and validates a raw provider payload.
func ParsePaymentEvent(payload []byte) (PaymentEvent, error) {
	var event PaymentEvent

	if err := json.Unmarshal(payload, &event); err != nil {
		return PaymentEvent{}, fmt.Errorf("failed to decode payment event: %w", err)
	}

	if err := event.Validate(); err != nil {
		return PaymentEvent{}, err
	}

	return event, nil
}

func (e PaymentEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing event id", ErrMalformedEvent)
	}

	if e.Type == "" {
		return fmt.Errorf("%w: missing event type", ErrMalformedEvent)
	}

	return nil
}

func (e PaymentEvent) BookingID() string {
	return e.Data.Object.Metadata[metadataBookingID]
}

func (e PaymentEvent) GuestEmail() string {
	return e.Data.Object.Metadata[metadataGuestEmail]
}

// Notifiable reports whether the guest should hear about this event.
func (e PaymentEvent) Notifiable() bool {
	if e.GuestEmail() == "" {
		return false
	}

	switch e.Type {
	case PaymentSucceeded, PaymentFailed, ChargeRefunded:
		return true
	default:
		return false
	}
}
