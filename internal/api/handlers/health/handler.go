package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/LosBucaros-ReservationService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type statusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /health - Database unavailable: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
