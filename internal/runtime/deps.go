package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/vault/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/architeacher/svc-booking-messaging/internal/adapters/http/handlers"
	"github.com/architeacher/svc-booking-messaging/internal/adapters/middleware"
	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/service"
	"github.com/architeacher/svc-booking-messaging/internal/usecases"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

type (
	Applications struct {
		Web        *usecases.WebApplication
		Subscriber *usecases.SubscriberApplication
	}

	ApplicationWorkers struct {
		ImageWorker    ports.MessageHandler
		SnapshotWorker ports.MessageHandler
	}

	TracerShutdownFunc func(ctx context.Context) error

	InfrastructureDeps struct {
		HTTPServer          *http.Server
		SecretStorageClient *api.Client
		StorageClient       *infrastructure.Storage
		QueueClient         *queue.ConnectionManager
		CacheClient         *infrastructure.KeydbClient
		Metrics             infrastructure.Metrics
	}

	Messaging struct {
		Registry  *queue.Registry
		Publisher *queue.Publisher
		Consumer  *queue.Consumer
	}

	DomainServices struct {
		Booking  ports.BookingService
		Notifier ports.Notifier
		Images   ports.ImageProcessor
		Indexer  ports.SearchIndexer
		Detached *service.DetachedTasks
	}

	Repos struct {
		SecretStorageRepo ports.SecretsRepository
		LedgerRepo        ports.IdempotencyLedger
	}

	Dependencies struct {
		Apps    Applications
		Workers ApplicationWorkers

		cfg          *config.ServiceConfig
		configLoader *config.Loader

		logger infrastructure.Logger

		Infra          InfrastructureDeps
		Messaging      Messaging
		DomainServices DomainServices
		Repos          Repos

		tracerShutdownFunc TracerShutdownFunc
		secretVersion      uint
	}
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*Dependencies, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("unable to load service configuration: %w", err)
	}

	appLogger := infrastructure.New(cfg.Logging)

	appLogger.Info().Msg("initializing dependencies...")

	deps := &Dependencies{
		cfg:    cfg,
		logger: appLogger,
	}

	// Start with default options and append any additional options.
	options := append(defaultOptions(ctx), opts...)

	for _, opt := range options {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	deps.logger.Info().Msg("dependencies initialized successfully")

	return deps, nil
}

func initHTTPServer(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
	reqHandler *handlers.RequestHandler,
) (*http.Server, error) {
	logger.Info().Msg("creating HTTP server...")

	router := chi.NewRouter()

	middlewares, err := initMiddlewares(cfg, logger, metrics)
	if err != nil {
		return nil, err
	}

	router.Use(middlewares...)

	if cfg.Telemetry.Metrics.Enabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	reqHandler.Register(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTPServer.Host, strconv.Itoa(cfg.HTTPServer.Port)),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	logger.Info().Str("addr", server.Addr).Msg("HTTP server created")

	return server, nil
}

func initMiddlewares(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) ([]func(http.Handler) http.Handler, error) {
	middlewares := []func(http.Handler) http.Handler{
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		chimiddleware.Timeout(cfg.HTTPServer.WriteTimeout),
		middleware.BodyLimit(cfg.HTTPServer.MaxBodyBytes),
		middleware.NewServiceHeadersMiddleware(cfg.AppConfig).Middleware,
		middleware.Tracer(),
	}

	if cfg.Telemetry.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(metrics)
		middlewares = append(middlewares, metricsMiddleware.Middleware)
		logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(cfg.Logging.AccessLog.LogHealthChecks)
		accessLogger := middleware.NewAccessLogger(logger.Logger, cfg.Logging.AccessLog.IncludeQueryParams)

		middlewares = append(middlewares, healthFilter.Middleware, accessLogger.Middleware)
		logger.Info().
			Bool("log_health_checks", cfg.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	if cfg.ThrottledRateLimiting.Enabled {
		rateLimitMiddleware, err := middleware.NewThrottledRateLimitingMiddleware(cfg.ThrottledRateLimiting, logger)
		if err != nil {
			return nil, err
		}

		middlewares = append(middlewares, rateLimitMiddleware.Middleware)
		logger.Info().Msg("rate limiting enabled")
	}

	return middlewares, nil
}
