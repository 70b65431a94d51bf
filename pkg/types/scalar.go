package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Scalar значение из формы, которое может прийти JSON-строкой, числом или null.
// Хранится в текстовом виде; числовые представления при ошибке разбора равны нулю.
type Scalar string

// UnmarshalJSON принимает строку, число, bool или null
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(strings.TrimSpace(str))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Scalar(num.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	if b {
		*s = "true"
	} else {
		*s = ""
	}
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

func (s Scalar) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Ptr возвращает nil для пустого значения
func (s Scalar) Ptr() *string {
	if s.IsEmpty() {
		return nil
	}
	v := string(s)
	return &v
}

// Int целое значение; дробная часть отбрасывается, нечисловое значение даёт 0
func (s Scalar) Int() int {
	return int(s.Int64())
}

func (s Scalar) Int64() int64 {
	str := strings.TrimSpace(string(s))
	if str == "" {
		return 0
	}
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		return n
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// Decimal десятичное значение, нечисловое значение даёт 0
func (s Scalar) Decimal() decimal.Decimal {
	str := strings.TrimSpace(string(s))
	if str == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero
	}
	return d
}
