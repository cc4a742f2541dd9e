package infrastructure

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-booking-messaging/internal/config"
)

func TestNewCircuitBreaker_TripsOnFailureRatio(t *testing.T) {
	t.Parallel()

	cb := NewCircuitBreaker("test", config.CircuitBreakerConfig{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
	}, NewTestLogger())

	failing := func() (any, error) { return nil, errors.New("boom") }

	for range 2 {
		_, _ = cb.Execute(failing)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, _ = cb.Execute(failing)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (any, error) { return "ok", nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
