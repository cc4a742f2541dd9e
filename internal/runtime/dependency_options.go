package runtime

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/architeacher/svc-booking-messaging/internal/adapters"
	"github.com/architeacher/svc-booking-messaging/internal/adapters/http/handlers"
	workers "github.com/architeacher/svc-booking-messaging/internal/adapters/queue"
	"github.com/architeacher/svc-booking-messaging/internal/adapters/repos"
	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
	"github.com/architeacher/svc-booking-messaging/internal/service"
	"github.com/architeacher/svc-booking-messaging/internal/usecases"
	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

type (
	DependencyOption func(*Dependencies) error
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithSecretStorage(),
		WithSecretStorageRepo(),
		WithConfigLoader(ctx),
		WithMetrics(ctx),
		WithTracing(ctx),
		WithQueue(),
	}
}

// WithSecretStorage initializes the Vault client using ENV config.
func WithSecretStorage() DependencyOption {
	return func(d *Dependencies) error {
		client, err := repos.NewVaultClient(d.cfg.SecretStorage)
		if err != nil {
			return err
		}

		d.Infra.SecretStorageClient = client

		return nil
	}
}

func WithSecretStorageRepo() DependencyOption {
	return func(d *Dependencies) error {
		d.Repos.SecretStorageRepo = repos.NewVaultRepository(d.Infra.SecretStorageClient)

		return nil
	}
}

func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		d.configLoader = config.NewLoader(d.cfg, d.Repos.SecretStorageRepo, d.secretVersion)

		if !d.cfg.SecretStorage.Enabled {
			d.logger.Info().Msg("secret storage is disabled, skipping vault configuration loading")

			return nil
		}

		version, err := d.configLoader.Load(ctx, d.Repos.SecretStorageRepo, d.cfg)
		if err != nil {
			return fmt.Errorf("unable to load service configuration: %w", err)
		}

		d.secretVersion = version

		return nil
	}
}

func WithStorage() DependencyOption {
	return func(d *Dependencies) error {
		storage, err := infrastructure.NewStorage(d.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		d.Infra.StorageClient = storage

		return nil
	}
}

// WithCache connects the ledger cache. The service runs without it when KeyDB is unreachable.
func WithCache(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		cacheClient := infrastructure.NewKeyDBClient(d.cfg.Cache, d.logger)

		cacheCtx, cancel := context.WithTimeout(ctx, d.cfg.Cache.DialTimeout)
		defer cancel()

		if err := cacheClient.Ping(cacheCtx); err != nil {
			d.logger.Error().Err(err).Msg("failed to connect to cache, continuing without cache")

			if closeErr := cacheClient.Close(); closeErr != nil {
				d.logger.Warn().Err(closeErr).Msg("failed to close unused cache client")
			}

			return nil
		}

		d.logger.Info().Msg("cache connection established")
		d.Infra.CacheClient = cacheClient

		return nil
	}
}

func WithDataRepos() DependencyOption {
	return func(d *Dependencies) error {
		var ledger ports.IdempotencyLedger = repos.NewIdempotencyRepository(d.Infra.StorageClient.GetDB())

		if d.Infra.CacheClient != nil {
			ledger = repos.NewCachedLedger(ledger, d.Infra.CacheClient.Client, d.cfg.Webhook.LedgerCacheTTL, d.logger)
		}

		d.Repos.LedgerRepo = ledger

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		metrics, err := infrastructure.NewMetrics(ctx, *d.cfg, d.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		d.Infra.Metrics = metrics

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if !d.cfg.Telemetry.Traces.Enabled {
			d.tracerShutdownFunc = func(_ context.Context) error {
				return nil
			}

			return nil
		}

		tracerShutdownFunc, err := infrastructure.InitGlobalTracer(ctx, d.cfg.Telemetry, d.cfg.AppConfig)
		if err != nil {
			d.logger.Error().Err(err).Msg("failed to initialize global tracer")

			return err
		}

		d.tracerShutdownFunc = tracerShutdownFunc

		return nil
	}
}

// WithQueue builds the shared broker connection and the topology registry. Dialing happens
// lazily on the first channel request.
func WithQueue() DependencyOption {
	return func(d *Dependencies) error {
		d.Infra.QueueClient = infrastructure.NewQueue(d.cfg.Queue, d.cfg.AppConfig, d.logger)
		d.Messaging.Registry = infrastructure.NewRegistry(d.cfg.Retry)

		return nil
	}
}

func WithPublisher(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		d.Messaging.Publisher = queue.NewPublisher(
			d.Infra.QueueClient,
			d.Messaging.Registry,
			queue.WithPublishingTimeout(d.cfg.Queue.PublishTimeout),
			queue.WithPublisherLogger(queue.NewZerologAdapter(d.logger.Component("publisher").Logger)),
			queue.WithPublisherObserver(adapters.NewMetricsAdapter(d.Infra.Metrics)),
		)

		initCtx, cancel := context.WithTimeout(ctx, d.cfg.Queue.ConnectTimeout)
		defer cancel()

		if err := d.Messaging.Publisher.Init(initCtx); err != nil {
			d.logger.Warn().Err(err).Msg("broker unavailable at startup, publishing will connect on demand")
		}

		return nil
	}
}

func WithHTTPServer(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		for _, opt := range []DependencyOption{WithStorage(), WithCache(ctx), WithDataRepos(), WithPublisher(ctx)} {
			if err := opt(d); err != nil {
				return err
			}
		}

		d.DomainServices.Booking = adapters.NewBookingClient(d.cfg.Collaborators.Booking, d.logger, d.Infra.Metrics)
		d.DomainServices.Notifier = adapters.NewMailerClient(d.cfg.Collaborators.Mailer, d.logger, d.Infra.Metrics)
		d.DomainServices.Detached = service.NewDetachedTasks(d.cfg.Webhook.NotifyTimeout, d.logger, d.Infra.Metrics)

		webhookService := service.NewWebhookService(
			d.Repos.LedgerRepo,
			d.DomainServices.Booking,
			d.DomainServices.Notifier,
			d.DomainServices.Detached,
			d.cfg.Webhook,
			d.logger,
			d.Infra.Metrics,
		)

		messagingService := service.NewMessagingService(
			d.Messaging.Publisher,
			d.Messaging.Registry,
			d.cfg.Publishing,
			d.logger,
			d.Infra.Metrics,
		)

		var cache adapters.Pinger
		if d.Infra.CacheClient != nil {
			cache = d.Infra.CacheClient
		}

		healthChecker := adapters.NewHealthChecker(d.Infra.StorageClient, cache, d.Infra.QueueClient)

		d.Apps.Web = usecases.NewWebApplication(
			webhookService,
			messagingService,
			service.NewApplicationService(healthChecker),
			d.logger,
			otel.GetTracerProvider(),
			adapters.NewMetricsAdapter(d.Infra.Metrics),
		)

		requestHandler := handlers.NewRequestHandler(
			d.Apps.Web,
			d.cfg.Webhook.SignatureHeader,
			d.cfg.AppConfig.ServiceVersion,
			d.logger,
		)

		httpServer, err := initHTTPServer(d.cfg, d.logger, d.Infra.Metrics, requestHandler)
		if err != nil {
			return fmt.Errorf("failed to initialize HTTP server: %w", err)
		}

		d.Infra.HTTPServer = httpServer

		return nil
	}
}

func WithSubscriber() DependencyOption {
	return func(d *Dependencies) error {
		d.Messaging.Consumer = queue.NewConsumer(
			d.Infra.QueueClient,
			d.Messaging.Registry,
			queue.WithRetryPolicy(infrastructure.RetryPolicy(d.cfg.Retry)),
			queue.WithHandlerTimeout(d.cfg.Retry.HandlerTimeout),
			queue.WithConsumingLogger(queue.NewZerologAdapter(d.logger.Component("consumer").Logger)),
			queue.WithConsumerObserver(adapters.NewMetricsAdapter(d.Infra.Metrics)),
		)

		d.DomainServices.Images = adapters.NewImageServiceClient(d.cfg.Collaborators.ImageService, d.logger, d.Infra.Metrics)
		d.DomainServices.Indexer = adapters.NewSearchIndexerClient(d.cfg.Collaborators.SearchIndex, d.logger, d.Infra.Metrics)

		subscriberService := service.NewSubscriberService(
			d.DomainServices.Images,
			d.DomainServices.Indexer,
			d.logger,
		)

		d.Apps.Subscriber = usecases.NewSubscriberApplication(
			subscriberService,
			d.logger,
			otel.GetTracerProvider(),
			adapters.NewMetricsAdapter(d.Infra.Metrics),
		)

		d.Workers.ImageWorker = workers.NewImageWorker(d.Apps.Subscriber, d.logger)
		d.Workers.SnapshotWorker = workers.NewSnapshotWorker(d.Apps.Subscriber, d.logger)

		return nil
	}
}
