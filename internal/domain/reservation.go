package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationKind тип заявки: номер или отдельная услуга (спа, пикник)
type ReservationKind string

// KindRoom единственный тип, для которого проверяется занятость номера.
// Любое другое значение считается заявкой на услугу.
const KindRoom ReservationKind = "habitacion"

// Reservation заявка на бронирование (таблица reservas)
type Reservation struct {
	Identification string // Документ гостя
	CustomerName   string
	Email          string
	Phone          *string
	Kind           ReservationKind

	CheckIn  *time.Time
	CheckOut *time.Time

	Adults   int
	Children int
	Couples  int

	Room *string // Только для KindRoom, иначе NULL

	Price         decimal.Decimal // Итоговая цена после промокода
	PromotionCode *string

	SpaPlan    *int64 // Код спа-плана (цена), NULL если не выбран
	SpaPersons int
	PicnicPlan int64 // Код пикника (цена), 0 если не выбран
}

// IsRoom заявка на номер, для неё проверяется занятость
func (r *Reservation) IsRoom() bool {
	return r.Kind == KindRoom
}

// Overlaps проверяет пересечение полуинтервалов [CheckIn, CheckOut).
// Бронирование без любой из дат ни с чем не пересекается.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	if r.CheckIn == nil || r.CheckOut == nil {
		return false
	}
	return r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn)
}

// OverlapFilter фильтр поиска пересекающихся бронирований номера
type OverlapFilter struct {
	Room     string
	CheckIn  time.Time
	CheckOut time.Time
}
