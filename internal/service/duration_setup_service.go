package service

import (
	"context"
	"log/slog"
	"time"

	"overstay/internal/domain"
	"overstay/pkg/e"
)

const (
	setupAccepted = "accepted"
	setupRejected = "rejected"
	setupFailed   = "error"
)

type durationSetupService struct {
	store    AllowedMinutesStore
	recorder MetricsRecorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewDurationSetupService(store AllowedMinutesStore, recorder MetricsRecorder, logger *slog.Logger) DurationSetupService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &durationSetupService{
		store:    store,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// SetAllowedMinutes validates before touching the store, so a rejected
// submission never changes what is configured.
func (s *durationSetupService) SetAllowedMinutes(ctx context.Context, value any) (domain.AllowedMinutesSetting, error) {
	minutes, err := domain.ParseAllowedMinutes(value)
	if err != nil {
		s.logger.Warn("allowed minutes rejected", slog.Any("value", value), slog.String("error", err.Error()))
		s.recorder.ObserveSetup(setupRejected)
		return domain.AllowedMinutesSetting{}, err
	}

	setting := domain.NewAllowedMinutesSetting(minutes, s.now())
	if err := s.store.Set(ctx, setting); err != nil {
		s.logger.Error("store.Set failed", slog.Any("error", err))
		s.recorder.ObserveSetup(setupFailed)
		return domain.AllowedMinutesSetting{}, e.Wrap("service.SetAllowedMinutes", err)
	}

	s.logger.Info("allowed minutes configured",
		slog.Int("allowed_minutes", setting.Minutes),
		slog.String("revision", setting.Revision.String()),
	)
	s.recorder.ObserveSetup(setupAccepted)
	return setting, nil
}

func (s *durationSetupService) GetAllowedMinutes(ctx context.Context) (*domain.AllowedMinutesSetting, error) {
	setting, err := s.store.Get(ctx)
	if err != nil {
		return nil, e.Wrap("service.GetAllowedMinutes", err)
	}
	return setting, nil
}
