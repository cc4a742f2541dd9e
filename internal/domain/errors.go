package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEventNotFound           = errors.New("webhook event not found")
	ErrDuplicateEvent          = errors.New("webhook event already recorded")
	ErrInvalidSignature        = errors.New("invalid webhook signature")
	ErrMalformedEvent          = errors.New("malformed webhook event")
	ErrUnknownProvider         = errors.New("unknown webhook provider")
	ErrInvalidRequest          = errors.New("invalid request")
	ErrRateLimitExceeded       = errors.New("rate limit exceeded")
	ErrCircuitBreakerOpen      = errors.New("circuit breaker open")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrCollaboratorRejected    = errors.New("collaborator rejected request")
	ErrUnknownQueue            = errors.New("unknown queue")
	ErrInvalidMessage          = errors.New("invalid message payload")
)

type DomainError struct {
	Code       string
	Message    string
	StatusCode int
	Cause      error
	Details    map[string]any
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}

	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, message string, statusCode int, cause error) *DomainError {
	return &DomainError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
		Details:    make(map[string]any),
	}
}

func (e *DomainError) WithDetails(key string, value any) *DomainError {
	e.Details[key] = value

	return e
}

func NewInvalidSignatureError(provider string, cause error) *DomainError {
	return NewDomainError(
		"INVALID_SIGNATURE",
		fmt.Sprintf("webhook signature verification failed for provider %s", provider),
		http.StatusBadRequest,
		errors.Join(ErrInvalidSignature, cause),
	).WithDetails("provider", provider)
}

func NewMalformedEventError(provider string, cause error) *DomainError {
	return NewDomainError(
		"MALFORMED_EVENT",
		fmt.Sprintf("webhook payload from provider %s could not be parsed", provider),
		http.StatusBadRequest,
		errors.Join(ErrMalformedEvent, cause),
	).WithDetails("provider", provider)
}

func NewUnknownProviderError(provider string) *DomainError {
	return NewDomainError(
		"UNKNOWN_PROVIDER",
		fmt.Sprintf("no webhook secret configured for provider %s", provider),
		http.StatusBadRequest,
		ErrUnknownProvider,
	).WithDetails("provider", provider)
}

func NewCollaboratorError(collaborator string, statusCode int, cause error) *DomainError {
	return NewDomainError(
		"COLLABORATOR_UNAVAILABLE",
		fmt.Sprintf("%s request failed", collaborator),
		http.StatusBadGateway,
		errors.Join(ErrCollaboratorUnavailable, cause),
	).WithDetails("collaborator", collaborator).WithDetails("status_code", statusCode)
}

// NewCollaboratorRejectedError reports a 4xx answer; retrying the same request cannot succeed.
func NewCollaboratorRejectedError(collaborator string, statusCode int, cause error) *DomainError {
	return NewDomainError(
		"COLLABORATOR_REJECTED",
		fmt.Sprintf("%s rejected the request", collaborator),
		http.StatusUnprocessableEntity,
		errors.Join(ErrCollaboratorRejected, cause),
	).WithDetails("collaborator", collaborator).WithDetails("status_code", statusCode)
}

func NewUnknownQueueError(queue string) *DomainError {
	return NewDomainError(
		"UNKNOWN_QUEUE",
		fmt.Sprintf("queue %s is not registered", queue),
		http.StatusNotFound,
		ErrUnknownQueue,
	).WithDetails("queue", queue)
}

func NewValidationError(message string) *DomainError {
	return NewDomainError(
		"VALIDATION_ERROR",
		message,
		http.StatusBadRequest,
		ErrInvalidRequest,
	)
}

func NewInvalidMessageError(queue string, cause error) *DomainError {
	return NewDomainError(
		"INVALID_MESSAGE",
		fmt.Sprintf("message on %s cannot be processed", queue),
		http.StatusUnprocessableEntity,
		errors.Join(ErrInvalidMessage, cause),
	).WithDetails("queue", queue)
}

// IsPermanent reports whether err can never succeed on redelivery.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrInvalidMessage) || errors.Is(err, ErrCollaboratorRejected)
}

func NewCircuitBreakerOpenError(name string, cause error) *DomainError {
	return NewDomainError(
		"CIRCUIT_BREAKER_OPEN",
		"service temporarily unavailable due to repeated failures",
		http.StatusServiceUnavailable,
		errors.Join(ErrCircuitBreakerOpen, cause),
	).WithDetails("breaker", name)
}

func NewRateLimitError(message string) *DomainError {
	return NewDomainError(
		"RATE_LIMITING_EXCEEDED",
		message,
		http.StatusTooManyRequests,
		ErrRateLimitExceeded,
	)
}

func NewInternalServerError(message string, cause error) *DomainError {
	return NewDomainError(
		"INTERNAL_SERVER_ERROR",
		message,
		http.StatusInternalServerError,
		cause,
	)
}
