package pricing

import "errors"

var (
	// ErrInvalidInput возвращается при отрицательном количестве гостей
	ErrInvalidInput = errors.New("pricing: invalid input data")
)
