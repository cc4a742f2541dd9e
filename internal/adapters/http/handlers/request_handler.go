package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/architeacher/svc-booking-messaging/internal/adapters/http/mappers"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/usecases"
	"github.com/architeacher/svc-booking-messaging/internal/usecases/commands"
	"github.com/architeacher/svc-booking-messaging/internal/usecases/queries"
)

const messageIDHeader = "X-Message-Id"

type (
	RequestHandler struct {
		app             *usecases.WebApplication
		signatureHeader string
		serviceVersion  string
		logger          infrastructure.Logger
	}

	webhookResponse struct {
		Received  bool `json:"received"`
		Duplicate bool `json:"duplicate"`
	}

	publishResponse struct {
		MessageID string `json:"message_id"`
	}

	batchResponse struct {
		MessageIDs []string `json:"message_ids"`
	}

	replayResponse struct {
		Replayed int `json:"replayed"`
	}

	healthResponse struct {
		*domain.HealthResult
		Timestamp time.Time `json:"timestamp"`
		Version   string    `json:"version"`
	}

	readinessResponse struct {
		*domain.ReadinessResult
		Timestamp time.Time `json:"timestamp"`
		Version   string    `json:"version"`
	}

	errorResponse struct {
		Error      string         `json:"error"`
		Message    string         `json:"message"`
		Details    map[string]any `json:"details,omitempty"`
		StatusCode int            `json:"status_code"`
		Timestamp  time.Time      `json:"timestamp"`
	}
)

func NewRequestHandler(
	app *usecases.WebApplication,
	signatureHeader string,
	serviceVersion string,
	logger infrastructure.Logger,
) *RequestHandler {
	return &RequestHandler{
		app:             app,
		signatureHeader: signatureHeader,
		serviceVersion:  serviceVersion,
		logger:          logger.Component("request_handler"),
	}
}

// Register mounts the API routes on router.
func (h *RequestHandler) Register(router chi.Router) {
	router.Route("/v1", func(r chi.Router) {
		r.Post("/webhooks/{provider}", h.ReceiveWebhook)

		r.Route("/queues/{queue}", func(r chi.Router) {
			r.Post("/messages", h.PublishMessage)
			r.Post("/messages/batch", h.PublishBatch)
			r.Post("/dead-letters/replay", h.ReplayDeadLetters)
		})

		r.Get("/health", h.HealthCheck)
		r.Get("/readiness", h.ReadinessCheck)
	})
}

// ReceiveWebhook answers 200 for processed and duplicate events, 400 when the delivery can never
// be accepted, and 500 so the provider redelivers after a processing failure.
func (h *RequestHandler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, bodyReadError(err))

		return
	}

	result, err := h.app.Commands.ProcessWebhookHandler.Handle(r.Context(), commands.ProcessWebhookCommand{
		Provider:  chi.URLParam(r, "provider"),
		Payload:   payload,
		Signature: r.Header.Get(h.signatureHeader),
	})
	if err != nil {
		h.writeError(w, r, mappers.WebhookErrorToDomain(err))

		return
	}

	h.writeJSON(w, http.StatusOK, webhookResponse{
		Received:  true,
		Duplicate: result.Duplicate,
	})
}

func (h *RequestHandler) PublishMessage(w http.ResponseWriter, r *http.Request) {
	priority, paramErr := optionalIntParam(r, "priority")
	if paramErr != nil {
		h.writeError(w, r, paramErr)

		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, bodyReadError(err))

		return
	}

	messageID, err := h.app.Commands.PublishMessageHandler.Handle(r.Context(), commands.PublishMessageCommand{
		Queue:     chi.URLParam(r, "queue"),
		Payload:   payload,
		Priority:  priority,
		MessageID: r.Header.Get(messageIDHeader),
	})
	if err != nil {
		h.writeError(w, r, mappers.ErrorToDomain(err))

		return
	}

	w.Header().Set(messageIDHeader, messageID)
	h.writeJSON(w, http.StatusAccepted, publishResponse{MessageID: messageID})
}

func (h *RequestHandler) PublishBatch(w http.ResponseWriter, r *http.Request) {
	priority, paramErr := optionalIntParam(r, "priority")
	if paramErr != nil {
		h.writeError(w, r, paramErr)

		return
	}

	var payloads []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		h.writeError(w, r, bodyReadError(err))

		return
	}

	messageIDs, err := h.app.Commands.PublishBatchHandler.Handle(r.Context(), commands.PublishBatchCommand{
		Queue:    chi.URLParam(r, "queue"),
		Payloads: payloads,
		Priority: priority,
	})
	if err != nil {
		h.writeError(w, r, mappers.ErrorToDomain(err))

		return
	}

	h.writeJSON(w, http.StatusAccepted, batchResponse{MessageIDs: messageIDs})
}

func (h *RequestHandler) ReplayDeadLetters(w http.ResponseWriter, r *http.Request) {
	limit, paramErr := optionalIntParam(r, "limit")
	if paramErr != nil {
		h.writeError(w, r, paramErr)

		return
	}

	cmd := commands.ReplayDeadLettersCommand{Queue: chi.URLParam(r, "queue")}
	if limit != nil {
		cmd.Limit = *limit
	}

	replayed, err := h.app.Commands.ReplayDeadLettersHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, mappers.ErrorToDomain(err).WithDetails("replayed", replayed))

		return
	}

	h.writeJSON(w, http.StatusOK, replayResponse{Replayed: replayed})
}

func (h *RequestHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealthReportQueryHandler.Execute(r.Context(), queries.FetchHealthReportQuery{})
	if err != nil {
		h.writeError(w, r, domain.NewInternalServerError("failed to check health", err))

		return
	}

	h.writeJSON(w, mappers.HealthStatusCode(result.OverallStatus), healthResponse{
		HealthResult: result,
		Timestamp:    time.Now().UTC(),
		Version:      h.serviceVersion,
	})
}

func (h *RequestHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadinessReportQueryHandler.Execute(r.Context(), queries.FetchReadinessReportQuery{})
	if err != nil {
		h.writeError(w, r, domain.NewInternalServerError("failed to check readiness", err))

		return
	}

	h.writeJSON(w, mappers.ReadinessStatusCode(result.OverallStatus), readinessResponse{
		ReadinessResult: result,
		Timestamp:       time.Now().UTC(),
		Version:         h.serviceVersion,
	})
}

func optionalIntParam(r *http.Request, name string) (*int, *domain.DomainError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("query parameter %s must be an integer", name))
	}

	return &value, nil
}

func bodyReadError(err error) *domain.DomainError {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domain.NewValidationError(fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit))
	}

	return domain.NewValidationError("request body could not be read")
}

func (h *RequestHandler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *RequestHandler) writeError(w http.ResponseWriter, r *http.Request, err *domain.DomainError) {
	if err.StatusCode >= http.StatusInternalServerError {
		h.logger.Error().
			Err(err).
			Str("path", r.URL.Path).
			Str("code", err.Code).
			Msg("request failed")
	}

	h.writeJSON(w, err.StatusCode, errorResponse{
		Error:      err.Code,
		Message:    err.Message,
		Details:    err.Details,
		StatusCode: err.StatusCode,
		Timestamp:  time.Now().UTC(),
	})
}
