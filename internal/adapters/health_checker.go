package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const defaultProbeTimeout = 2 * time.Second

var errBrokerDisconnected = errors.New("broker connection is down")

type (
	// Pinger is satisfied by the storage and KeyDB clients.
	Pinger interface {
		Ping(ctx context.Context) error
	}

	// BrokerProbe is satisfied by the broker connection manager.
	BrokerProbe interface {
		IsConnected() bool
	}

	// HealthChecker probes the real dependencies. A nil dependency is reported as disabled.
	HealthChecker struct {
		storage      Pinger
		cache        Pinger
		broker       BrokerProbe
		probeTimeout time.Duration
		startTime    time.Time
	}
)

var _ ports.HealthChecker = (*HealthChecker)(nil)

func NewHealthChecker(storage, cache Pinger, broker BrokerProbe) *HealthChecker {
	return &HealthChecker{
		storage:      storage,
		cache:        cache,
		broker:       broker,
		probeTimeout: defaultProbeTimeout,
		startTime:    time.Now(),
	}
}

// CheckReadiness reports ready when both storage and broker are reachable.
func (h *HealthChecker) CheckReadiness(ctx context.Context) *domain.ReadinessResult {
	storageStatus := h.checkPinger(ctx, h.storage)
	cacheStatus := h.checkPinger(ctx, h.cache)
	brokerStatus := h.checkBroker()

	overallStatus := domain.ReadinessResponseStatusReady
	if storageStatus.Status == domain.DependencyCheckStatusUnhealthy ||
		brokerStatus.Status == domain.DependencyCheckStatusUnhealthy {
		overallStatus = domain.ReadinessResponseStatusNotReady
	}

	return &domain.ReadinessResult{
		OverallStatus: overallStatus,
		Storage:       storageStatus,
		Cache:         cacheStatus,
		Broker:        brokerStatus,
	}
}

func (h *HealthChecker) CheckHealth(ctx context.Context) *domain.HealthResult {
	storageStatus := h.checkPinger(ctx, h.storage)
	cacheStatus := h.checkPinger(ctx, h.cache)
	brokerStatus := h.checkBroker()

	return &domain.HealthResult{
		OverallStatus: h.calculateOverallHealthStatus(storageStatus, cacheStatus, brokerStatus),
		Storage:       storageStatus,
		Cache:         cacheStatus,
		Broker:        brokerStatus,
		Uptime:        float32(time.Since(h.startTime).Seconds()),
	}
}

func (h *HealthChecker) calculateOverallHealthStatus(storage, cache, broker domain.DependencyStatus) domain.HealthResponseStatus {
	// Storage is critical: without the ledger no webhook can be processed.
	if storage.Status == domain.DependencyCheckStatusUnhealthy {
		return domain.HealthResponseStatusUnhealthy
	}

	if cache.Status == domain.DependencyCheckStatusUnhealthy ||
		broker.Status == domain.DependencyCheckStatusUnhealthy {
		return domain.HealthResponseStatusDegraded
	}

	return domain.HealthResponseStatusHealthy
}

func (h *HealthChecker) checkPinger(ctx context.Context, dependency Pinger) domain.DependencyStatus {
	if dependency == nil {
		return disabledStatus()
	}

	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	return dependencyStatus(start, dependency.Ping(ctx))
}

func (h *HealthChecker) checkBroker() domain.DependencyStatus {
	if h.broker == nil {
		return disabledStatus()
	}

	start := time.Now()

	var err error
	if !h.broker.IsConnected() {
		err = errBrokerDisconnected
	}

	return dependencyStatus(start, err)
}

func dependencyStatus(start time.Time, err error) domain.DependencyStatus {
	status := domain.DependencyStatus{
		Status:       domain.DependencyCheckStatusHealthy,
		ResponseTime: float32(time.Since(start).Milliseconds()),
		LastChecked:  time.Now(),
	}

	if err != nil {
		status.Status = domain.DependencyCheckStatusUnhealthy
		status.Error = err.Error()
	}

	return status
}

func disabledStatus() domain.DependencyStatus {
	return domain.DependencyStatus{
		Status:      domain.DependencyCheckStatusDisabled,
		LastChecked: time.Now(),
	}
}
