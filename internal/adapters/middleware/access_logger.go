package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const skipAccessLogKey contextKey = "skip_access_log"

// AccessLogger writes one structured line per request. Server errors log at error level,
// client errors at warn.
type AccessLogger struct {
	logger       zerolog.Logger
	includeQuery bool
}

func NewAccessLogger(logger zerolog.Logger, includeQuery bool) *AccessLogger {
	return &AccessLogger{
		logger:       logger.With().Str("component", "http_access").Logger(),
		includeQuery: includeQuery,
	}
}

func (a *AccessLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skip, ok := r.Context().Value(skipAccessLogKey).(bool); ok && skip {
			next.ServeHTTP(w, r)

			return
		}

		startTime := time.Now()
		recorder := NewResponseRecorder(w)

		next.ServeHTTP(recorder, r)

		duration := time.Since(startTime)

		var logEvent *zerolog.Event

		switch status := recorder.StatusCode(); {
		case status >= http.StatusInternalServerError:
			logEvent = a.logger.Error()
		case status >= http.StatusBadRequest:
			logEvent = a.logger.Warn()
		default:
			logEvent = a.logger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Str("proto", r.Proto).
			Int("status_code", recorder.StatusCode()).
			Int64("response_size_bytes", recorder.BytesWritten()).
			Dur("duration", duration).
			Float64("duration_ms", float64(duration.Microseconds())/1000)

		if a.includeQuery && r.URL.RawQuery != "" {
			logEvent.Str("query", r.URL.RawQuery)
		}

		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				logEvent.Str("route", pattern)
			}

			for i, key := range routeCtx.URLParams.Keys {
				logEvent.Str(key, routeCtx.URLParams.Values[i])
			}
		}

		requestID := chimiddleware.GetReqID(r.Context())
		if requestID == "" {
			requestID = r.Header.Get(chimiddleware.RequestIDHeader)
		}

		if requestID != "" {
			logEvent.Str("request_id", requestID)
		}

		if spanCtx := trace.SpanContextFromContext(r.Context()); spanCtx.HasTraceID() {
			logEvent.Str("trace_id", spanCtx.TraceID().String())
		}

		logEvent.Msg("HTTP request completed")
	})
}
