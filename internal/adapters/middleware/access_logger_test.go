package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogger_Middleware(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		method        string
		target        string
		includeQuery  bool
		statusCode    int
		expectedLevel string
		expectedQuery any
		skipAccessLog bool
		requestID     string
	}{
		{
			name:          "accepted publish logs info level",
			method:        http.MethodPost,
			target:        "/v1/queues/image.processing/messages?priority=5",
			includeQuery:  true,
			statusCode:    http.StatusAccepted,
			expectedLevel: "info",
			expectedQuery: "priority=5",
		},
		{
			name:          "query omitted when disabled",
			method:        http.MethodPost,
			target:        "/v1/queues/image.processing/messages?priority=5",
			statusCode:    http.StatusAccepted,
			expectedLevel: "info",
		},
		{
			name:          "rejected webhook logs warn level",
			method:        http.MethodPost,
			target:        "/v1/webhooks/stripe",
			statusCode:    http.StatusBadRequest,
			expectedLevel: "warn",
		},
		{
			name:          "server error logs error level",
			method:        http.MethodPost,
			target:        "/v1/webhooks/stripe",
			statusCode:    http.StatusInternalServerError,
			expectedLevel: "error",
		},
		{
			name:          "includes request id header",
			method:        http.MethodGet,
			target:        "/v1/health",
			statusCode:    http.StatusOK,
			expectedLevel: "info",
			requestID:     "req_12345",
		},
		{
			name:          "skipped access log does not log",
			method:        http.MethodGet,
			target:        "/v1/health",
			statusCode:    http.StatusOK,
			skipAccessLog: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			accessLogger := NewAccessLogger(zerolog.New(&buf), tc.includeQuery)

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(`{}`))
			})

			req := httptest.NewRequest(tc.method, tc.target, nil)

			if tc.skipAccessLog {
				req = req.WithContext(context.WithValue(req.Context(), skipAccessLogKey, true))
			}

			if tc.requestID != "" {
				req.Header.Set(chimiddleware.RequestIDHeader, tc.requestID)
			}

			accessLogger.Middleware(handler).ServeHTTP(httptest.NewRecorder(), req)

			if tc.skipAccessLog {
				assert.Empty(t, buf.String())

				return
			}

			var logEntry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry), "log output should be valid JSON: %s", buf.String())

			assert.Equal(t, tc.expectedLevel, logEntry["level"])
			assert.Equal(t, "http_access", logEntry["component"])
			assert.Equal(t, tc.method, logEntry["method"])
			assert.Equal(t, req.URL.Path, logEntry["path"])
			assert.Equal(t, tc.expectedQuery, logEntry["query"])
			assert.Equal(t, float64(tc.statusCode), logEntry["status_code"])
			assert.Contains(t, logEntry, "duration_ms")
			assert.Equal(t, float64(2), logEntry["response_size_bytes"])

			if tc.requestID != "" {
				assert.Equal(t, tc.requestID, logEntry["request_id"])
			}
		})
	}
}

func TestAccessLogger_LogsRouteParameters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	router := chi.NewRouter()
	router.Use(NewAccessLogger(zerolog.New(&buf), false).Middleware)
	router.Post("/v1/queues/{queue}/messages", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/queues/image.processing/messages", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "/v1/queues/{queue}/messages", logEntry["route"])
	assert.Equal(t, "image.processing", logEntry["queue"])
}
