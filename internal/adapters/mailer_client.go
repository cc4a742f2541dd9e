package adapters

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const paymentNotificationsPath = "/v1/notifications/payments"

type MailerClient struct {
	collaborator *collaboratorClient
}

var _ ports.Notifier = (*MailerClient)(nil)

func NewMailerClient(cfg config.CollaboratorConfig, logger infrastructure.Logger, metrics infrastructure.Metrics) *MailerClient {
	return &MailerClient{
		collaborator: newCollaboratorClient("mailer", cfg, logger, metrics),
	}
}

func (c *MailerClient) NotifyPayment(ctx context.Context, notification domain.PaymentNotification) error {
	return c.collaborator.post(ctx, paymentNotificationsPath, notification)
}
