package middleware

import (
	"net/http"

	"github.com/architeacher/svc-booking-messaging/internal/config"
)

type ServiceHeadersMiddleware struct {
	apiVersion     string
	serviceVersion string
}

func NewServiceHeadersMiddleware(app config.AppConfig) ServiceHeadersMiddleware {
	return ServiceHeadersMiddleware{
		apiVersion:     app.APIVersion,
		serviceVersion: app.ServiceVersion,
	}
}

func (mw ServiceHeadersMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("API-Version", mw.apiVersion)
		header.Set("Service-Version", mw.serviceVersion)
		header.Set("Cache-Control", "no-store")
		header.Set("X-Content-Type-Options", "nosniff")

		next.ServeHTTP(w, r)
	})
}
