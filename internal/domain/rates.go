package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomRate тариф номера.
// PerPerson > 0: цена за взрослого. Иначе цена за пару, с отдельным тарифом выходного дня.
type RoomRate struct {
	PerPerson int64
	Weekday   int64
	Weekend   int64
}

// IsPerPerson returns true if the rate is charged per adult
func (r RoomRate) IsPerPerson() bool {
	return r.PerPerson > 0
}

var roomRates = map[string]RoomRate{
	RoomFamilySuite:  {PerPerson: 235000},
	RoomFamilyCabin:  {PerPerson: 230000},
	RoomSingle:       {Weekday: 430000, Weekend: 450000},
	RoomStandard:     {Weekday: 450000, Weekend: 470000},
	RoomJacuzziSuite: {Weekday: 530000, Weekend: 550000},
}

// RateFor возвращает тариф номера
func RateFor(room string) (RoomRate, bool) {
	rate, ok := roomRates[room]
	return rate, ok
}

// IsWeekend пятница, суббота и воскресенье считаются выходными
func IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// CalculateRoomPrice цена номера по тарифной сетке сайта.
// Неизвестный номер стоит 0.
func CalculateRoomPrice(room string, adults, couples int, checkIn time.Time) decimal.Decimal {
	rate, ok := RateFor(room)
	if !ok {
		return decimal.Zero
	}

	if rate.IsPerPerson() {
		return decimal.NewFromInt(rate.PerPerson).Mul(decimal.NewFromInt(int64(adults)))
	}

	nightly := rate.Weekday
	if IsWeekend(checkIn) {
		nightly = rate.Weekend
	}
	return decimal.NewFromInt(nightly).Mul(decimal.NewFromInt(int64(couples)))
}
