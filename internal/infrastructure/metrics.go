//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/architeacher/svc-booking-messaging/internal/config"
)

const (
	metricsNamespace = "booking_messaging"
)

type (
	//counterfeiter:generate -o ../mocks/metrics.go . Metrics

	Metrics interface {
		RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64)
		RecordMessagePublished(ctx context.Context, queue string, priority uint8)
		RecordPublishFailure(ctx context.Context, queue, errorType string)
		RecordMessageHandled(ctx context.Context, queue, outcome string, duration time.Duration)
		RecordWebhookEvent(ctx context.Context, provider, eventType, status string, duration time.Duration)
		RecordCollaboratorCall(ctx context.Context, collaborator string, success bool, duration time.Duration)
		RecordDetachedTask(ctx context.Context, task string, success bool)
		RecordUseCase(ctx context.Context, kind, name string, success bool, duration time.Duration)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	OTELMetrics struct {
		meterProvider *sdkmetric.MeterProvider
		meter         metric.Meter
		logger        Logger

		httpRequestTotal       metric.Int64Counter
		httpRequestDuration    metric.Float64Histogram
		httpRequestSize        metric.Int64Histogram
		httpResponseSize       metric.Int64Histogram
		messagesPublishedTotal metric.Int64Counter
		publishFailuresTotal   metric.Int64Counter
		messagesHandledTotal   metric.Int64Counter
		handlingDuration       metric.Float64Histogram
		webhookEventsTotal     metric.Int64Counter
		webhookDuration        metric.Float64Histogram
		collaboratorCallsTotal metric.Int64Counter
		collaboratorDuration   metric.Float64Histogram
		detachedTasksTotal     metric.Int64Counter
		useCasesTotal          metric.Int64Counter
		useCaseDuration        metric.Float64Histogram
	}
)

func NewMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (Metrics, error) {
	if !cfg.Telemetry.Metrics.Enabled {
		logger.Info().Msg("metrics disabled, using NoOp implementation")

		return &NoOpMetrics{}, nil
	}

	return NewOTELMetrics(ctx, cfg, logger)
}

func NewOTELMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (*OTELMetrics, error) {
	endpoint := fmt.Sprintf("%s:%s", cfg.Telemetry.OtelGRPCHost, cfg.Telemetry.OtelGRPCPort)

	conn, err := grpc.NewClient(
		endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTEL collector: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.AppConfig.ServiceName),
			semconv.ServiceVersionKey.String(cfg.AppConfig.ServiceVersion),
			semconv.ServiceInstanceIDKey.String(cfg.AppConfig.CommitSHA),
			semconv.DeploymentEnvironmentKey.String(cfg.AppConfig.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		metricsNamespace,
		metric.WithInstrumentationVersion(cfg.AppConfig.ServiceVersion),
	)

	provider := &OTELMetrics{
		meterProvider: meterProvider,
		meter:         meter,
		logger:        logger.Component("metrics"),
	}

	if err := provider.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Info().
		Str("otel_endpoint", endpoint).
		Msg("OTEL metrics provider initialized successfully")

	return provider, nil
}

func (om *OTELMetrics) initializeMetrics() error {
	var err error

	om.httpRequestTotal, err = om.meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	om.httpRequestDuration, err = om.meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	om.httpRequestSize, err = om.meter.Int64Histogram(
		"http_request_size_bytes",
		metric.WithDescription("HTTP request size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_request_size_bytes histogram: %w", err)
	}

	om.httpResponseSize, err = om.meter.Int64Histogram(
		"http_response_size_bytes",
		metric.WithDescription("HTTP response size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_response_size_bytes histogram: %w", err)
	}

	om.messagesPublishedTotal, err = om.meter.Int64Counter(
		"messages_published_total",
		metric.WithDescription("Total number of messages handed to the broker"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create messages_published_total counter: %w", err)
	}

	om.publishFailuresTotal, err = om.meter.Int64Counter(
		"publish_failures_total",
		metric.WithDescription("Total number of failed publish attempts"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create publish_failures_total counter: %w", err)
	}

	om.messagesHandledTotal, err = om.meter.Int64Counter(
		"messages_handled_total",
		metric.WithDescription("Total number of consumed messages by outcome"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create messages_handled_total counter: %w", err)
	}

	om.handlingDuration, err = om.meter.Float64Histogram(
		"message_handling_duration_seconds",
		metric.WithDescription("Time spent handling a consumed message in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create message_handling_duration_seconds histogram: %w", err)
	}

	om.webhookEventsTotal, err = om.meter.Int64Counter(
		"webhook_events_total",
		metric.WithDescription("Total number of received webhook events by status"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create webhook_events_total counter: %w", err)
	}

	om.webhookDuration, err = om.meter.Float64Histogram(
		"webhook_processing_duration_seconds",
		metric.WithDescription("Webhook processing duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create webhook_processing_duration_seconds histogram: %w", err)
	}

	om.collaboratorCallsTotal, err = om.meter.Int64Counter(
		"collaborator_calls_total",
		metric.WithDescription("Total number of calls to downstream services"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create collaborator_calls_total counter: %w", err)
	}

	om.collaboratorDuration, err = om.meter.Float64Histogram(
		"collaborator_call_duration_seconds",
		metric.WithDescription("Downstream service call duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create collaborator_call_duration_seconds histogram: %w", err)
	}

	om.detachedTasksTotal, err = om.meter.Int64Counter(
		"detached_tasks_total",
		metric.WithDescription("Total number of fire-and-forget tasks by status"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create detached_tasks_total counter: %w", err)
	}

	om.useCasesTotal, err = om.meter.Int64Counter(
		"use_cases_total",
		metric.WithDescription("Total number of executed commands and queries by status"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create use_cases_total counter: %w", err)
	}

	om.useCaseDuration, err = om.meter.Float64Histogram(
		"use_case_duration_seconds",
		metric.WithDescription("Command and query execution duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create use_case_duration_seconds histogram: %w", err)
	}

	return nil
}

func (om *OTELMetrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64) {
	om.httpRequestTotal.Add(ctx, 1,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.httpRequestDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.httpRequestSize.Record(ctx, requestSize,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
		),
	)

	om.httpResponseSize.Record(ctx, responseSize,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)
}

func (om *OTELMetrics) RecordMessagePublished(ctx context.Context, queue string, priority uint8) {
	om.messagesPublishedTotal.Add(ctx, 1,
		metric.WithAttributes(
			QueueAttr(queue),
			PriorityAttr(priority),
		),
	)
}

func (om *OTELMetrics) RecordPublishFailure(ctx context.Context, queue, errorType string) {
	om.publishFailuresTotal.Add(ctx, 1,
		metric.WithAttributes(
			QueueAttr(queue),
			ErrorTypeAttr(errorType),
		),
	)
}

func (om *OTELMetrics) RecordMessageHandled(ctx context.Context, queue, outcome string, duration time.Duration) {
	om.messagesHandledTotal.Add(ctx, 1,
		metric.WithAttributes(
			QueueAttr(queue),
			OutcomeAttr(outcome),
		),
	)

	om.handlingDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			QueueAttr(queue),
			OutcomeAttr(outcome),
		),
	)
}

func (om *OTELMetrics) RecordWebhookEvent(ctx context.Context, provider, eventType, status string, duration time.Duration) {
	om.webhookEventsTotal.Add(ctx, 1,
		metric.WithAttributes(
			ProviderAttr(provider),
			EventTypeAttr(eventType),
			StatusAttr(status),
		),
	)

	om.webhookDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			ProviderAttr(provider),
			StatusAttr(status),
		),
	)
}

func (om *OTELMetrics) RecordCollaboratorCall(ctx context.Context, collaborator string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}

	om.collaboratorCallsTotal.Add(ctx, 1,
		metric.WithAttributes(
			CollaboratorAttr(collaborator),
			StatusAttr(status),
		),
	)

	om.collaboratorDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			CollaboratorAttr(collaborator),
		),
	)
}

func (om *OTELMetrics) RecordDetachedTask(ctx context.Context, task string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	om.detachedTasksTotal.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("task", task),
			StatusAttr(status),
		),
	)
}

func (om *OTELMetrics) RecordUseCase(ctx context.Context, kind, name string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}

	om.useCasesTotal.Add(ctx, 1,
		metric.WithAttributes(
			UseCaseKindAttr(kind),
			UseCaseNameAttr(name),
			StatusAttr(status),
		),
	)

	om.useCaseDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			UseCaseKindAttr(kind),
			UseCaseNameAttr(name),
		),
	)
}

func (om *OTELMetrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (om *OTELMetrics) Shutdown(ctx context.Context) error {
	if err := om.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	return nil
}
