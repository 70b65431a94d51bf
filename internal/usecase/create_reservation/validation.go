package create_reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
)

var validate = validator.New()

// validateRequest проверяет обязательные поля и цену
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				missing = append(missing, fe.Field())
			}
			return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.Price.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidPrice, req.Price.String())
	}

	return nil
}

// parseDate разбирает необязательную дату YYYY-MM-DD; пустая строка даёт nil
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return &date, nil
}

// validateStay проверяет даты заявки на номер
func validateStay(room *string, checkIn, checkOut *time.Time) error {
	if room == nil || strings.TrimSpace(*room) == "" {
		return fmt.Errorf("%w: room is empty", ErrMissingRoom)
	}
	if checkIn == nil || checkOut == nil {
		return fmt.Errorf("%w: check-in and check-out are required", ErrMissingRoom)
	}
	if !checkOut.After(*checkIn) {
		return fmt.Errorf("%w: %s - %s", ErrInvalidStayPeriod,
			checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
	}
	return nil
}

// countOverlapping подсчитывает заявки, пересекающиеся с [checkIn, checkOut)
func countOverlapping(reservations []*domain.Reservation, checkIn, checkOut time.Time) int {
	count := 0
	for _, r := range reservations {
		if r.Overlaps(checkIn, checkOut) {
			count++
		}
	}
	return count
}

// metricKind сводит произвольный tipoReserva к ограниченному набору меток
func metricKind(kind string) string {
	switch kind {
	case string(domain.KindRoom), "spa", "picnic":
		return kind
	default:
		return "other"
	}
}
