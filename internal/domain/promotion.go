package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Promotion промокод (таблица promociones)
type Promotion struct {
	Code      string
	Discount  decimal.Decimal // Скидка в процентах
	StartDate time.Time
	EndDate   time.Time
}

// IsActiveOn returns true if day falls within [StartDate, EndDate], both ends inclusive.
// Only calendar dates are compared.
func (p *Promotion) IsActiveOn(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}

// Apply возвращает цену со скидкой: price - price*discount/100
func (p *Promotion) Apply(price decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(p.Discount).Div(hundred))
}

// DateOnly отбрасывает время и часовой пояс, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
