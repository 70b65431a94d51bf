package create_reservation

import (
	"github.com/shopspring/decimal"
)

// Request заявка в том виде, в котором её прислала форма сайта.
// Даты передаются строками и разбираются при валидации.
type Request struct {
	Identification string `validate:"required"`
	CustomerName   string `validate:"required"`
	Email          string `validate:"required"`
	Phone          *string
	Kind           string `validate:"required"`

	CheckIn  string // YYYY-MM-DD или пусто
	CheckOut string

	Adults   int
	Children int
	Couples  int

	Room          *string
	Price         decimal.Decimal // Цена, посчитанная на сайте, до промокода
	PromotionCode *string

	SpaPlan    *int64
	SpaPersons int
	PicnicPlan int64
}

// Response результат успешной обработки заявки
type Response struct {
	FinalPrice       decimal.Decimal
	PromotionApplied bool
}
