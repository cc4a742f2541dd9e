package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
)

// ThrottledRateLimitingMiddleware applies a GCRA quota per client address, or globally when IP limiting is off.
type ThrottledRateLimitingMiddleware struct {
	limiter   *throttled.HTTPRateLimiterCtx
	skipPaths []string
}

func NewThrottledRateLimitingMiddleware(
	cfg config.ThrottledRateLimitingConfig,
	logger infrastructure.Logger,
) (*ThrottledRateLimitingMiddleware, error) {
	store, err := memstore.NewCtx(cfg.MaxKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit store: %w", err)
	}

	quota := throttled.RateQuota{
		MaxRate:  throttled.PerSec(cfg.RequestsPerSecond),
		MaxBurst: cfg.BurstSize,
	}

	rateLimiter, err := throttled.NewGCRARateLimiterCtx(store, quota)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	componentLogger := logger.Component("rate_limiter")

	return &ThrottledRateLimitingMiddleware{
		limiter: &throttled.HTTPRateLimiterCtx{
			RateLimiter: rateLimiter,
			VaryBy: &throttled.VaryBy{
				RemoteAddr: cfg.EnableIPLimiting,
				Method:     !cfg.EnableIPLimiting,
			},
			DeniedHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				componentLogger.Warn().
					Str("remote_addr", r.RemoteAddr).
					Str("path", r.URL.Path).
					Msg("rate limit exceeded")

				writeDomainError(w, domain.NewRateLimitError("too many requests, retry later"))
			}),
			Error: func(w http.ResponseWriter, _ *http.Request, err error) {
				componentLogger.Error().Err(err).Msg("rate limiter failed")

				writeDomainError(w, domain.NewInternalServerError("rate limiter failed", err))
			},
		},
		skipPaths: cfg.SkipPaths,
	}, nil
}

func (m *ThrottledRateLimitingMiddleware) Middleware(next http.Handler) http.Handler {
	limited := m.limiter.RateLimit(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slices.Contains(m.skipPaths, r.URL.Path) {
			next.ServeHTTP(w, r)

			return
		}

		limited.ServeHTTP(w, r)
	})
}

type errorBody struct {
	Error      string    `json:"error"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

func writeDomainError(w http.ResponseWriter, err *domain.DomainError) {
	w.Header().Set("Content-Type", "application/json")

	if err.StatusCode == http.StatusTooManyRequests && w.Header().Get("Retry-After") == "" {
		w.Header().Set("Retry-After", strconv.Itoa(1))
	}

	w.WriteHeader(err.StatusCode)

	_ = json.NewEncoder(w).Encode(errorBody{
		Error:      err.Code,
		Message:    err.Message,
		StatusCode: err.StatusCode,
		Timestamp:  time.Now().UTC(),
	})
}
