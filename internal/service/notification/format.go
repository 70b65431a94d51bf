package notification

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatPrice форматирует цену по-колумбийски: точка разделяет тысячи, запятая дробную часть
func FormatPrice(price decimal.Decimal) string {
	return pricePrinter.Sprint(number.Decimal(price.InexactFloat64(), number.MaxFractionDigits(2)))
}
