package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest параметры расчёта цены номера
type QuoteRequest struct {
	Room    string
	Adults  int
	Couples int
	CheckIn *time.Time // nil, если дата ещё не выбрана
}

// QuoteResponse рассчитанная цена
type QuoteResponse struct {
	Room      string
	RoomName  string
	Price     decimal.Decimal
	Weekend   bool
	PerPerson bool
	Known     bool // false для номера, которого нет в тарифной сетке
}
