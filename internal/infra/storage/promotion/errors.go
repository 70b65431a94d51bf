package promotion

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда промокод не найден
	ErrPromotionNotFound = errors.New("promotion.repository: promotion not found")

	ErrBuildQuery = errors.New("promotion.repository: failed to build query")
	ErrScanRow    = errors.New("promotion.repository: failed to scan row")
)
