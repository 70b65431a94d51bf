package promotion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий промокодов (только чтение)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"codigo",
		"descuento",
		"fecha_inicio",
		"fecha_fin",
	).
		From("promociones").
		Where(squirrel.Eq{"codigo": code}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var promo domain.Promotion
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.Code,
		&promo.Discount,
		&promo.StartDate,
		&promo.EndDate,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promotion: %v", ErrScanRow, err)
	}

	return &promo, nil
}
