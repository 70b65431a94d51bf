package quote_price

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/LosBucaros-ReservationService/internal/api/handlers"
	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/internal/service/pricing"
	"github.com/m04kA/LosBucaros-ReservationService/internal/service/pricing/models"
)

const (
	msgMissingRoom   = "El parámetro habitacion es obligatorio."
	msgInvalidNumber = "adultos y parejas deben ser números enteros no negativos."
	msgInvalidDate   = "Formato de fecha inválido, se espera AAAA-MM-DD."
	msgQuoteFailed   = "No fue posible calcular el precio."
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/cotizacion
// Query params: habitacion (required), adultos, parejas, fechaIngreso (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	room := strings.TrimSpace(query.Get("habitacion"))
	if room == "" {
		h.logger.Warn("GET /api/cotizacion - Missing room")
		handlers.RespondBadRequest(w, msgMissingRoom)
		return
	}

	adults, err := parseCount(query.Get("adultos"))
	if err != nil {
		h.logger.Warn("GET /api/cotizacion - Invalid adults: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNumber)
		return
	}

	couples, err := parseCount(query.Get("parejas"))
	if err != nil {
		h.logger.Warn("GET /api/cotizacion - Invalid couples: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNumber)
		return
	}

	req := &models.QuoteRequest{
		Room:    room,
		Adults:  adults,
		Couples: couples,
	}

	if dateStr := strings.TrimSpace(query.Get("fechaIngreso")); dateStr != "" {
		checkIn, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /api/cotizacion - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.CheckIn = &checkIn
	}

	resp, err := h.service.Quote(r.Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			h.logger.Warn("GET /api/cotizacion - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNumber)
			return
		}
		h.logger.Error("GET /api/cotizacion - Failed to quote room=%s: %v", room, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgQuoteFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}

// parseCount пустое значение считается нулём
func parseCount(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative count")
	}
	return n, nil
}
