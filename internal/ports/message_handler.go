package ports

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

// MessageHandler consumes one logical queue.
type MessageHandler interface {
	Queue() string
	Handle(ctx context.Context, msg queue.Message) error
}
