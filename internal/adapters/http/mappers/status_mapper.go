package mappers

import (
	"errors"
	"net/http"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
)

func ReadinessStatusCode(status domain.ReadinessResponseStatus) int {
	if status == domain.ReadinessResponseStatusReady {
		return http.StatusOK
	}

	return http.StatusServiceUnavailable
}

// HealthStatusCode keeps a degraded service in rotation; only an unhealthy one answers 503.
func HealthStatusCode(status domain.HealthResponseStatus) int {
	if status == domain.HealthResponseStatusUnhealthy {
		return http.StatusServiceUnavailable
	}

	return http.StatusOK
}

// ErrorToDomain returns the domain error carried by err, or a 500 wrapping it.
func ErrorToDomain(err error) *domain.DomainError {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	return domain.NewInternalServerError("unexpected error", err)
}

// WebhookErrorToDomain narrows errors on the webhook route to 400 or 500. Providers treat any
// other status as a delivery failure and redeliver, which only 500 should trigger.
func WebhookErrorToDomain(err error) *domain.DomainError {
	domainErr := ErrorToDomain(err)
	if domainErr.StatusCode == http.StatusBadRequest || domainErr.StatusCode == http.StatusTooManyRequests {
		return domainErr
	}

	return domain.NewInternalServerError("webhook processing failed", err)
}
