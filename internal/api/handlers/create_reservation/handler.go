package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/LosBucaros-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/LosBucaros-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido."
	msgMissingFields      = "Faltan campos obligatorios para la reserva."
	msgInvalidDate        = "Formato de fecha inválido, se espera AAAA-MM-DD."
	msgInvalidStay        = "La fecha de salida debe ser posterior a la fecha de ingreso."
	msgMissingRoom        = "Debes seleccionar una habitación y las fechas de ingreso y salida."
	msgInvalidPrice       = "El precio de la reserva no es válido."
	msgNotAvailable       = "❌ No hay disponibilidad para estas fechas. Por favor elige otra fecha u otra habitación."
	msgInvalidPromotion   = "Código de promoción inválido"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reserva
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/reserva - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrMissingRequiredFields):
			h.logger.Warn("POST /api/reserva - Missing required fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /api/reserva - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidStayPeriod):
			h.logger.Warn("POST /api/reserva - Invalid stay period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, createReservation.ErrMissingRoom):
			h.logger.Warn("POST /api/reserva - Missing room data: %v", err)
			handlers.RespondBadRequest(w, msgMissingRoom)

		case errors.Is(err, createReservation.ErrInvalidPrice):
			h.logger.Warn("POST /api/reserva - Invalid price: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, createReservation.ErrValidation):
			h.logger.Warn("POST /api/reserva - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /api/reserva - Room not available: room=%s, check-in=%s, check-out=%s",
				req.Room, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidPromotion):
			h.logger.Warn("POST /api/reserva - Invalid promotion code: %s", req.PromotionCode)
			handlers.RespondBadRequest(w, msgInvalidPromotion)

		default:
			h.logger.Error("POST /api/reserva - Failed to process reservation: identification=%s, error=%v",
				req.Identification, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/reserva - Reservation accepted: identification=%s, kind=%s, price=%s",
		req.Identification, req.Kind, result.FinalPrice.String())
	handlers.RespondSuccess(w)
}
