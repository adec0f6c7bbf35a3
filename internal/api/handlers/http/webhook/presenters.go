package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"overstay/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// EvaluationResponse is the flat envelope returned for an evaluated visit.
type EvaluationResponse struct {
	Message             string         `json:"message"`
	Verdict             domain.Verdict `json:"verdict"`
	StayDurationMinutes int            `json:"stayDurationMinutes"`
	AllowedMinutes      int            `json:"allowedMinutes"`
	DeltaMinutes        int            `json:"deltaMinutes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func present(o domain.EventOutcome) any {
	if o.Evaluation == nil {
		return MessageResponse{Message: o.Message}
	}
	ev := o.Evaluation
	return EvaluationResponse{
		Message:             ev.Message,
		Verdict:             ev.Verdict,
		StayDurationMinutes: ev.StayDurationMinutes,
		AllowedMinutes:      ev.AllowedMinutes,
		DeltaMinutes:        ev.DeltaMinutes,
	}
}

func visitorDataError(reason string) string {
	return "Error processing visitor data: " + reason
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
