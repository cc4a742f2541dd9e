//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

//counterfeiter:generate -o ../mocks/message_publisher.go . MessagePublisher

// MessagePublisher is the broker publishing side as seen by application services.
type MessagePublisher interface {
	Publish(ctx context.Context, queue string, payload any, opts ...queue.PublishOption) (string, error)
	PublishBatch(ctx context.Context, queue string, payloads []any, opts ...queue.PublishOption) ([]string, error)
	ReplayDeadLetters(ctx context.Context, base string, limit int) (int, error)
}
