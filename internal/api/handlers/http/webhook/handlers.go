package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"overstay/internal/domain"
	"overstay/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type EventHandler interface {
	HandleEvent(ctx context.Context, event domain.VisitorEvent) (domain.EventOutcome, error)
}

type Handler struct {
	logger *slog.Logger
	Events EventHandler
}

func NewHandler(logger *slog.Logger, events EventHandler) *Handler {
	return &Handler{
		logger: logger,
		Events: events,
	}
}

// VisitorWebhook evaluates sign-out events. Unknown payload fields are
// accepted since the platform sends far more than the visitor timestamps.
func (h *Handler) VisitorWebhook(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var ev domain.VisitorEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: visitorDataError("invalid JSON")})
		return
	}

	l.Debug("webhook payload", slog.String("type", ev.Type))

	outcome, err := h.Events.HandleEvent(r.Context(), ev)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, present(outcome))
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, e.ErrMalformedEvent) {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: visitorDataError(err.Error())})
		return
	}
	h.log(r).Error("webhook processing failed", slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
