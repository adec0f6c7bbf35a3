package duration

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"overstay/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AllowedMinutesSetter interface {
	SetAllowedMinutes(ctx context.Context, value any) (domain.AllowedMinutesSetting, error)
}

type Handler struct {
	logger *slog.Logger
	Setter AllowedMinutesSetter
}

func NewHandler(logger *slog.Logger, setter AllowedMinutesSetter) *Handler {
	return &Handler{
		logger: logger,
		Setter: setter,
	}
}

// DurationSetup validates and stores the allowed stay in minutes sent by the
// platform when the integration is configured.
func (h *Handler) DurationSetup(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.DurationSetupRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusUnprocessableEntity, rejected(domain.InvalidBodyError().Fields))
		return
	}

	l.Debug("duration setup payload", slog.Any("allowed_minutes", req.Value()))

	setting, err := h.Setter.SetAllowedMinutes(r.Context(), req.Value())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("duration configured", slog.Int("allowed_minutes", setting.Minutes))
	h.writeJSON(w, http.StatusOK, accepted(setting))
}
