package quote_price

import (
	"encoding/json"

	"github.com/m04kA/LosBucaros-ReservationService/internal/service/pricing/models"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Success   bool        `json:"success"`
	Room      string      `json:"habitacion"`
	RoomName  string      `json:"nombreHabitacion"`
	Price     json.Number `json:"precio"`
	Weekend   bool        `json:"finDeSemana"`
	PerPerson bool        `json:"porPersona"`
	KnownRate bool        `json:"tarifaConocida"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.QuoteResponse) *QuoteResponse {
	return &QuoteResponse{
		Success:   true,
		Room:      resp.Room,
		RoomName:  resp.RoomName,
		Price:     json.Number(resp.Price.String()),
		Weekend:   resp.Weekend,
		PerPerson: resp.PerPerson,
		KnownRate: resp.Known,
	}
}
