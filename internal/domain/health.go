package domain

import "time"

type (
	DependencyCheckStatus string

	ReadinessResponseStatus string

	HealthResponseStatus string
)

const (
	DependencyCheckStatusHealthy   DependencyCheckStatus = "healthy"
	DependencyCheckStatusDisabled  DependencyCheckStatus = "disabled"
	DependencyCheckStatusUnhealthy DependencyCheckStatus = "unhealthy"
)

const (
	ReadinessResponseStatusReady    ReadinessResponseStatus = "ready"
	ReadinessResponseStatusNotReady ReadinessResponseStatus = "not_ready"
)

const (
	HealthResponseStatusHealthy   HealthResponseStatus = "healthy"
	HealthResponseStatusDegraded  HealthResponseStatus = "degraded"
	HealthResponseStatusUnhealthy HealthResponseStatus = "unhealthy"
)

type (
	// DependencyStatus is the result of probing one dependency.
	DependencyStatus struct {
		Status       DependencyCheckStatus `json:"status"`
		ResponseTime float32               `json:"response_time_ms"`
		LastChecked  time.Time             `json:"last_checked"`
		Error        string                `json:"error,omitempty"`
	}

	ReadinessResult struct {
		OverallStatus ReadinessResponseStatus `json:"status"`
		Storage       DependencyStatus        `json:"storage"`
		Cache         DependencyStatus        `json:"cache"`
		Broker        DependencyStatus        `json:"broker"`
	}

	HealthResult struct {
		OverallStatus HealthResponseStatus `json:"status"`
		Storage       DependencyStatus     `json:"storage"`
		Cache         DependencyStatus     `json:"cache"`
		Broker        DependencyStatus     `json:"broker"`
		Uptime        float32              `json:"uptime_seconds"`
	}
)
