package notification

import (
	"strconv"
	"time"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
)

const (
	operatorSubjectPrefix = "📩 Nueva Reserva - "
	guestSubject          = "✅ Solicitud de tu Reserva - Hotel Los Bucaros"

	// Должен совпадать с cid: в templates/guest.html
	logoContentID = "logoBucaros"
	logoFileName  = "logo.jpg"
)

// emailData поля, общие для письма отелю и письма гостю
type emailData struct {
	Identification string
	CustomerName   string
	Email          string
	Phone          string
	Kind           string
	Room           string
	CheckIn        string
	CheckOut       string
	Adults         string
	Children       string
	Couples        string
	Spa            string
	Picnic         string
	PromotionCode  string
	Price          string

	HasLogo bool
}

func newEmailData(r *domain.Reservation) emailData {
	details := domain.Describe(r)

	return emailData{
		Identification: r.Identification,
		CustomerName:   r.CustomerName,
		Email:          r.Email,
		Phone:          valueOr(r.Phone, domain.DescriptionNotApplicable),
		Kind:           string(r.Kind),
		Room:           details.Room,
		CheckIn:        formatDate(r.CheckIn),
		CheckOut:       formatDate(r.CheckOut),
		Adults:         strconv.Itoa(r.Adults),
		Children:       strconv.Itoa(r.Children),
		Couples:        strconv.Itoa(r.Couples),
		Spa:            details.Spa,
		Picnic:         details.Picnic,
		PromotionCode:  valueOr(r.PromotionCode, domain.DescriptionNone),
		Price:          FormatPrice(r.Price),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return domain.DescriptionNotApplicable
	}
	return t.Format(domain.DateFormat)
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
