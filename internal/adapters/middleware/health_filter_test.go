package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckFilter_Middleware(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                string
		path                string
		logHealthChecks     bool
		expectSkipAccessLog bool
	}{
		{
			name:                "skips health endpoint",
			path:                "/v1/health",
			expectSkipAccessLog: true,
		},
		{
			name:                "skips readiness endpoint",
			path:                "/v1/readiness",
			expectSkipAccessLog: true,
		},
		{
			name:                "skips metrics scrape",
			path:                "/metrics",
			expectSkipAccessLog: true,
		},
		{
			name: "logs webhook deliveries",
			path: "/v1/webhooks/stripe",
		},
		{
			name: "logs queue names that merely end like a probe",
			path: "/v1/queues/health/messages",
		},
		{
			name:            "logs probes when enabled",
			path:            "/v1/health",
			logHealthChecks: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			filter := NewHealthCheckFilter(tc.logHealthChecks)

			var skipped bool

			handler := filter.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				skipped, _ = r.Context().Value(skipAccessLogKey).(bool)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectSkipAccessLog, skipped)
		})
	}
}
