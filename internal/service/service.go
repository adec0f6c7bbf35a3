package service

import (
	"context"

	"overstay/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// AllowedMinutesStore persists the single allowance setting. Get returns
// nil, nil while nothing has been configured.
type AllowedMinutesStore interface {
	Get(ctx context.Context) (*domain.AllowedMinutesSetting, error)
	Set(ctx context.Context, setting domain.AllowedMinutesSetting) error
}

type MetricsRecorder interface {
	ObserveEvent(outcome string)
	ObserveStay(minutes int)
	ObserveSetup(result string)
}

// Конфигурация допустимого времени
type DurationSetupService interface {
	SetAllowedMinutes(ctx context.Context, value any) (domain.AllowedMinutesSetting, error)
	GetAllowedMinutes(ctx context.Context) (*domain.AllowedMinutesSetting, error)
}

// События визитов
type VisitorEventService interface {
	HandleEvent(ctx context.Context, event domain.VisitorEvent) (domain.EventOutcome, error)
}

type Service struct {
	DurationSetupService DurationSetupService
	VisitorEventService  VisitorEventService
}

func NewService(
	durationSetupService DurationSetupService,
	visitorEventService VisitorEventService,
) *Service {
	return &Service{
		DurationSetupService: durationSetupService,
		VisitorEventService:  visitorEventService,
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveEvent(string) {}
func (nopRecorder) ObserveStay(int)     {}
func (nopRecorder) ObserveSetup(string) {}
