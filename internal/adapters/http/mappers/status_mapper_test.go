package mappers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
)

func TestReadinessStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, ReadinessStatusCode(domain.ReadinessResponseStatusReady))
	assert.Equal(t, http.StatusServiceUnavailable, ReadinessStatusCode(domain.ReadinessResponseStatusNotReady))
}

func TestHealthStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status domain.HealthResponseStatus
		want   int
	}{
		{status: domain.HealthResponseStatusHealthy, want: http.StatusOK},
		{status: domain.HealthResponseStatusDegraded, want: http.StatusOK},
		{status: domain.HealthResponseStatusUnhealthy, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, HealthStatusCode(tt.status))
		})
	}
}

func TestErrorToDomain(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("failed to publish: %w", domain.NewUnknownQueueError("nope"))
	assert.Equal(t, http.StatusNotFound, ErrorToDomain(wrapped).StatusCode)

	plain := errors.New("boom")
	domainErr := ErrorToDomain(plain)
	assert.Equal(t, http.StatusInternalServerError, domainErr.StatusCode)
	assert.ErrorIs(t, domainErr, plain)
}

func TestWebhookErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid signature",
			err:  domain.NewInvalidSignatureError("stripe", errors.New("mismatch")),
			want: http.StatusBadRequest,
		},
		{
			name: "malformed event",
			err:  domain.NewMalformedEventError("stripe", errors.New("bad json")),
			want: http.StatusBadRequest,
		},
		{
			name: "collaborator failure",
			err:  fmt.Errorf("failed to apply payment: %w", domain.NewCollaboratorError("booking_service", 502, errors.New("bad gateway"))),
			want: http.StatusInternalServerError,
		},
		{
			name: "collaborator rejection",
			err:  domain.NewCollaboratorRejectedError("booking_service", 409, errors.New("conflict")),
			want: http.StatusInternalServerError,
		},
		{
			name: "unexpected",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, WebhookErrorToDomain(tt.err).StatusCode)
		})
	}
}
