package service

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

type (
	ApplicationService interface {
		FetchReadinessReport(ctx context.Context) (*domain.ReadinessResult, error)
		FetchHealthReport(ctx context.Context) (*domain.HealthResult, error)
	}

	appService struct {
		healthChecker ports.HealthChecker
	}
)

func NewApplicationService(healthChecker ports.HealthChecker) ApplicationService {
	return &appService{
		healthChecker: healthChecker,
	}
}

func (s *appService) FetchReadinessReport(ctx context.Context) (*domain.ReadinessResult, error) {
	return s.healthChecker.CheckReadiness(ctx), nil
}

func (s *appService) FetchHealthReport(ctx context.Context) (*domain.HealthResult, error) {
	return s.healthChecker.CheckHealth(ctx), nil
}
