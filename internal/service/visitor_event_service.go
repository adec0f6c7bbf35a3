package service

import (
	"context"
	"errors"
	"log/slog"

	"overstay/internal/domain"
	"overstay/pkg/e"
)

const (
	eventMalformed = "malformed"
	eventFailed    = "error"
)

type visitorEventService struct {
	settings    DurationSetupService
	recorder    MetricsRecorder
	logger      *slog.Logger
	signOutType string
	keys        domain.AttributeKeys
}

func NewVisitorEventService(
	settings DurationSetupService,
	recorder MetricsRecorder,
	logger *slog.Logger,
	signOutType string,
	keys domain.AttributeKeys,
) VisitorEventService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if signOutType == "" {
		signOutType = domain.DefaultSignOutEventType
	}
	if keys.SignIn == "" || keys.SignOut == "" {
		keys = domain.DefaultAttributeKeys()
	}
	return &visitorEventService{
		settings:    settings,
		recorder:    recorder,
		logger:      logger,
		signOutType: signOutType,
		keys:        keys,
	}
}

func (s *visitorEventService) HandleEvent(ctx context.Context, event domain.VisitorEvent) (domain.EventOutcome, error) {
	if !domain.IsSignOut(event, s.signOutType) {
		s.logger.Debug("event ignored", slog.String("type", event.Type))
		s.recorder.ObserveEvent(string(domain.OutcomeIgnored))
		return domain.EventOutcome{Status: domain.OutcomeIgnored, Message: domain.MessageIgnored}, nil
	}

	setting, err := s.settings.GetAllowedMinutes(ctx)
	if err != nil {
		s.logger.Error("GetAllowedMinutes failed", slog.Any("error", err))
		s.recorder.ObserveEvent(eventFailed)
		return domain.EventOutcome{}, err
	}
	if setting == nil {
		s.logger.Info("event received before configuration")
		s.recorder.ObserveEvent(string(domain.OutcomeUnconfigured))
		return domain.EventOutcome{Status: domain.OutcomeUnconfigured, Message: domain.MessageUnconfigured}, nil
	}

	signIn, signOut, err := domain.StayTimes(event.Data.Visitor, s.keys)
	if err != nil {
		var merr *e.MalformedEventError
		if errors.As(err, &merr) {
			s.logger.Warn("malformed visitor event", slog.String("field", merr.Field), slog.String("reason", merr.Reason))
		}
		s.recorder.ObserveEvent(eventMalformed)
		return domain.EventOutcome{}, err
	}

	ev := domain.Evaluate(signIn, signOut, setting.Minutes)

	visitorID := ""
	if event.Data.Visitor != nil {
		visitorID = event.Data.Visitor.ID
	}
	s.logger.Info("visitor stay evaluated",
		slog.String("visitor_id", visitorID),
		slog.String("verdict", string(ev.Verdict)),
		slog.Int("stay_minutes", ev.StayDurationMinutes),
		slog.Int("allowed_minutes", ev.AllowedMinutes),
		slog.String("config_revision", setting.Revision.String()),
	)
	s.recorder.ObserveEvent(string(ev.Verdict))
	s.recorder.ObserveStay(ev.StayDurationMinutes)

	return domain.EventOutcome{Status: domain.OutcomeEvaluated, Message: ev.Message, Evaluation: &ev}, nil
}
