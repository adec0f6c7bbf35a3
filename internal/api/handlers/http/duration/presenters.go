package duration

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"overstay/internal/domain"
	"overstay/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// SetupResponse echoes the stored value as a number, never a string.
// Errors is always an array so the platform can render it directly.
type SetupResponse struct {
	Config *ConfigView    `json:"config"`
	Errors []e.FieldError `json:"errors"`
}

type ConfigView struct {
	AllowedMinutes int `json:"allowedMinutes"`
}

func accepted(s domain.AllowedMinutesSetting) SetupResponse {
	return SetupResponse{
		Config: &ConfigView{AllowedMinutes: s.Minutes},
		Errors: []e.FieldError{},
	}
}

func rejected(fields []e.FieldError) SetupResponse {
	return SetupResponse{Errors: fields}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *e.ValidationError
	if errors.As(err, &verr) {
		h.writeJSON(w, http.StatusUnprocessableEntity, rejected(verr.Fields))
		return
	}
	h.log(r).Error("duration setup failed", slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
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
