package middleware

import (
	"context"
	"net/http"
	"slices"
)

// HealthCheckFilter keeps probe and scrape traffic out of the access log.
type HealthCheckFilter struct {
	quietPaths      []string
	logHealthChecks bool
}

func NewHealthCheckFilter(logHealthChecks bool) *HealthCheckFilter {
	return &HealthCheckFilter{
		quietPaths: []string{
			"/v1/health",
			"/v1/readiness",
			"/metrics",
		},
		logHealthChecks: logHealthChecks,
	}
}

func (h *HealthCheckFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.logHealthChecks || !h.isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), skipAccessLogKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *HealthCheckFilter) isQuiet(path string) bool {
	return slices.Contains(h.quietPaths, path)
}
