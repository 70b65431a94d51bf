package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/internal/service/pricing/models"
)

// Service калькулятор цены номера, повторяющий расчёт на сайте
type Service struct {
	logger Logger
}

func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Quote считает цену номера.
// Без даты заезда цена равна 0, как и для номера вне тарифной сетки.
func (s *Service) Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	if req.Adults < 0 || req.Couples < 0 {
		s.logger.Warn("Quote: negative guests count adults=%d couples=%d", req.Adults, req.Couples)
		return nil, fmt.Errorf("%w: adults and couples must be non-negative", ErrInvalidInput)
	}

	rate, known := domain.RateFor(req.Room)

	resp := &models.QuoteResponse{
		Room:      req.Room,
		RoomName:  domain.RoomName(req.Room),
		Price:     decimal.Zero,
		PerPerson: rate.IsPerPerson(),
		Known:     known,
	}

	if !known {
		s.logger.Warn("Quote: unknown room %q, price is 0", req.Room)
		return resp, nil
	}

	if req.CheckIn == nil {
		return resp, nil
	}

	resp.Weekend = domain.IsWeekend(*req.CheckIn)
	resp.Price = domain.CalculateRoomPrice(req.Room, req.Adults, req.Couples, *req.CheckIn)

	s.logger.Info("Quote: room=%s check-in=%s weekend=%t price=%s",
		req.Room, req.CheckIn.Format(domain.DateFormat), resp.Weekend, resp.Price.String())

	return resp, nil
}
