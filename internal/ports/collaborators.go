//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
)

//counterfeiter:generate -o ../mocks/booking_service.go . BookingService
//counterfeiter:generate -o ../mocks/notifier.go . Notifier
//counterfeiter:generate -o ../mocks/image_processor.go . ImageProcessor
//counterfeiter:generate -o ../mocks/search_indexer.go . SearchIndexer

type (
	// BookingService applies payment outcomes to bookings.
	BookingService interface {
		ApplyPayment(ctx context.Context, event domain.PaymentEvent) error
	}

	// Notifier delivers guest notifications.
	Notifier interface {
		NotifyPayment(ctx context.Context, notification domain.PaymentNotification) error
	}

	ImageProcessor interface {
		ProcessImage(ctx context.Context, job domain.ImageProcessingJob) error
	}

	SearchIndexer interface {
		IndexSnapshot(ctx context.Context, event domain.HotelSearchSnapshotEvent) error
	}
)
