package adapters

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const bookingPaymentEventsPath = "/v1/payment-events"

type bookingPaymentRequest struct {
	EventID   string `json:"eventId"`
	EventType string `json:"eventType"`
	BookingID string `json:"bookingId,omitempty"`
	PaymentID string `json:"paymentId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
}

// BookingClient forwards payment outcomes to the booking service.
type BookingClient struct {
	collaborator *collaboratorClient
}

var _ ports.BookingService = (*BookingClient)(nil)

func NewBookingClient(cfg config.CollaboratorConfig, logger infrastructure.Logger, metrics infrastructure.Metrics) *BookingClient {
	return &BookingClient{
		collaborator: newCollaboratorClient("booking_service", cfg, logger, metrics),
	}
}

func (c *BookingClient) ApplyPayment(ctx context.Context, event domain.PaymentEvent) error {
	return c.collaborator.post(ctx, bookingPaymentEventsPath, bookingPaymentRequest{
		EventID:   event.ID,
		EventType: event.Type,
		BookingID: event.BookingID(),
		PaymentID: event.Data.Object.ID,
		Amount:    event.Data.Object.Amount,
		Currency:  event.Data.Object.Currency,
		Status:    event.Data.Object.Status,
	})
}
