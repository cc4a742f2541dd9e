package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
)

// collaboratorClient posts JSON to one downstream service behind a circuit breaker.
// 4xx answers are rejections the caller must not retry. Network failures and 5xx answers are
// reported as unavailability and count against the breaker.
type collaboratorClient struct {
	name           string
	client         *resty.Client
	circuitBreaker *gobreaker.CircuitBreaker
	logger         infrastructure.Logger
	metrics        infrastructure.Metrics
}

func newCollaboratorClient(
	name string,
	cfg config.CollaboratorConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) *collaboratorClient {
	client := resty.New()

	client.SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(cfg.MaxRetryWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	client.SetHeaders(map[string]string{
		"User-Agent":   cfg.UserAgent,
		"Accept":       "application/json",
		"Content-Type": "application/json",
	})

	componentLogger := logger.Component(name)

	return &collaboratorClient{
		name:           name,
		client:         client,
		circuitBreaker: infrastructure.NewCircuitBreaker(name, cfg.CircuitBreaker, componentLogger),
		logger:         componentLogger,
		metrics:        metrics,
	}
}

func (c *collaboratorClient) post(ctx context.Context, path string, body any) error {
	startTime := time.Now()

	// Rejections travel as the result so they do not count against the breaker.
	rejection, err := c.circuitBreaker.Execute(func() (any, error) {
		return c.send(ctx, path, body)
	})

	if err == nil && rejection != nil {
		err = rejection.(error)
	}

	c.metrics.RecordCollaboratorCall(ctx, c.name, err == nil, time.Since(startTime))

	if err == nil {
		return nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Warn().Str("path", path).Msg("circuit breaker is open")

		return domain.NewCircuitBreakerOpenError(c.name, err)
	}

	return err
}

func (c *collaboratorClient) send(ctx context.Context, path string, body any) (any, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to call collaborator")

		return nil, domain.NewCollaboratorError(c.name, 0, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status_code", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("collaborator call completed")

	status := resp.StatusCode()

	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return nil, nil
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return error(domain.NewCollaboratorRejectedError(
			c.name,
			status,
			fmt.Errorf("HTTP %d: %s", status, resp.String()),
		)), nil
	default:
		c.logger.Warn().
			Str("path", path).
			Int("status_code", status).
			Msg("collaborator returned non-success status code")

		return nil, domain.NewCollaboratorError(c.name, status, fmt.Errorf("HTTP %d: %s", status, resp.Status()))
	}
}
