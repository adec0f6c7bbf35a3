package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"overstay/internal/domain"
	"overstay/internal/service"
	mock_service "overstay/internal/service/mocks"
	"overstay/pkg/e"
)

func signOutEvent(in, out string) domain.VisitorEvent {
	return domain.VisitorEvent{
		Type: "visitor.sign_out",
		Data: domain.EventData{Visitor: &domain.Visitor{
			ID: "12345",
			Attributes: map[string]any{
				"sign-in-time":  in,
				"sign-out-time": out,
			},
		}},
	}
}

func configured(minutes int) *domain.AllowedMinutesSetting {
	s := domain.NewAllowedMinutesSetting(minutes, time.Now())
	return &s
}

func newEventService(settings service.DurationSetupService, rec service.MetricsRecorder) service.VisitorEventService {
	return service.NewVisitorEventService(settings, rec, newTestLogger(), "visitor.sign_out", domain.DefaultAttributeKeys())
}

func TestHandleEvent_IgnoresOtherTypes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	rec := mock_service.NewMockMetricsRecorder(ctrl)
	rec.EXPECT().ObserveEvent("ignored").Times(1)

	svc := newEventService(settings, rec)

	ev := signOutEvent("2024-01-01T10:00:00Z", "2024-01-01T10:25:00Z")
	ev.Type = "visitor.sign_in"

	got, err := svc.HandleEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.OutcomeIgnored || got.Message != "Ignored non-sign-out event" || got.Evaluation != nil {
		t.Fatalf("unexpected outcome %+v", got)
	}
}

func TestHandleEvent_NoConfig(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	rec := mock_service.NewMockMetricsRecorder(ctrl)
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(nil, nil).Times(1)
	rec.EXPECT().ObserveEvent("unconfigured").Times(1)

	svc := newEventService(settings, rec)

	got, err := svc.HandleEvent(context.Background(), signOutEvent("2024-01-01T10:00:00Z", "2024-01-01T10:25:00Z"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.OutcomeUnconfigured || got.Message != "No config set" || got.Evaluation != nil {
		t.Fatalf("unexpected outcome %+v", got)
	}
}

func TestHandleEvent_Overstayed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	rec := mock_service.NewMockMetricsRecorder(ctrl)
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(configured(20), nil).Times(1)
	rec.EXPECT().ObserveEvent("overstayed").Times(1)
	rec.EXPECT().ObserveStay(25).Times(1)

	svc := newEventService(settings, rec)

	got, err := svc.HandleEvent(context.Background(), signOutEvent("2024-01-01T10:00:00Z", "2024-01-01T10:25:00Z"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.OutcomeEvaluated || got.Evaluation == nil {
		t.Fatalf("unexpected outcome %+v", got)
	}
	ev := got.Evaluation
	if ev.Verdict != domain.VerdictOverstayed || ev.StayDurationMinutes != 25 || ev.AllowedMinutes != 20 || ev.DeltaMinutes != 5 {
		t.Fatalf("unexpected evaluation %+v", ev)
	}
	if got.Message != ev.Message {
		t.Fatalf("outcome message %q differs from evaluation %q", got.Message, ev.Message)
	}
}

func TestHandleEvent_BoundaryWithinLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(configured(20), nil).Times(1)

	svc := newEventService(settings, nil)

	got, err := svc.HandleEvent(context.Background(), signOutEvent("2024-01-01T10:00:00Z", "2024-01-01T10:20:00Z"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Evaluation == nil || got.Evaluation.Verdict != domain.VerdictWithinLimit || got.Evaluation.StayDurationMinutes != 20 {
		t.Fatalf("unexpected outcome %+v", got)
	}
}

func TestHandleEvent_MissingTimestamp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	rec := mock_service.NewMockMetricsRecorder(ctrl)
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(configured(20), nil).Times(1)
	rec.EXPECT().ObserveEvent("malformed").Times(1)

	svc := newEventService(settings, rec)

	ev := signOutEvent("2024-01-01T10:00:00Z", "")
	delete(ev.Data.Visitor.Attributes, "sign-out-time")

	_, err := svc.HandleEvent(context.Background(), ev)
	var merr *e.MalformedEventError
	if !errors.As(err, &merr) {
		t.Fatalf("expected malformed event error got %v", err)
	}
	if merr.Field != "sign-out-time" {
		t.Fatalf("unexpected field %q", merr.Field)
	}
}

func TestHandleEvent_MissingVisitor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(configured(20), nil).Times(1)

	svc := newEventService(settings, nil)

	_, err := svc.HandleEvent(context.Background(), domain.VisitorEvent{Type: "visitor.sign_out"})
	if !errors.Is(err, e.ErrMalformedEvent) {
		t.Fatalf("expected ErrMalformedEvent got %v", err)
	}
}

func TestHandleEvent_SettingsError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	rec := mock_service.NewMockMetricsRecorder(ctrl)
	wantErr := errors.New("store unavailable")
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(nil, wantErr).Times(1)
	rec.EXPECT().ObserveEvent("error").Times(1)

	svc := newEventService(settings, rec)

	_, err := svc.HandleEvent(context.Background(), signOutEvent("2024-01-01T10:00:00Z", "2024-01-01T10:25:00Z"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v got %v", wantErr, err)
	}
	if errors.Is(err, e.ErrMalformedEvent) {
		t.Fatalf("store failure must not look like a malformed event")
	}
}

func TestHandleEvent_CustomTypeAndKeys(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_service.NewMockDurationSetupService(ctrl)
	settings.EXPECT().GetAllowedMinutes(gomock.Any()).Return(configured(60), nil).Times(1)

	svc := service.NewVisitorEventService(settings, nil, newTestLogger(), "entry.sign_out",
		domain.AttributeKeys{SignIn: "signed_in_at", SignOut: "signed_out_at"})

	ev := domain.VisitorEvent{
		Type: "entry.sign_out",
		Data: domain.EventData{Visitor: &domain.Visitor{Attributes: map[string]any{
			"signed_in_at":  "2024-01-01T10:00:00Z",
			"signed_out_at": "2024-01-01T11:30:00Z",
		}}},
	}

	got, err := svc.HandleEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Evaluation == nil || got.Evaluation.StayDurationMinutes != 90 || got.Evaluation.DeltaMinutes != 30 {
		t.Fatalf("unexpected outcome %+v", got)
	}

	if out, _ := svc.HandleEvent(context.Background(), signOutEvent("2024-01-01T10:00:00Z", "2024-01-01T10:25:00Z")); out.Status != domain.OutcomeIgnored {
		t.Fatalf("default type must be ignored when another type is configured, got %+v", out)
	}
}
