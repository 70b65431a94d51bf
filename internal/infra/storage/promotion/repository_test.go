package promotion

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var promoColumns = []string{"codigo", "descuento", "fecha_inicio", "fecha_fin"}

func TestRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT codigo, descuento, fecha_inicio, fecha_fin FROM promociones WHERE codigo = $1 LIMIT 1")).
		WithArgs("VERANO10").
		WillReturnRows(sqlmock.NewRows(promoColumns).AddRow("VERANO10", "10", start, end))

	repo := NewRepository(db)
	promo, err := repo.GetByCode(context.Background(), "VERANO10")

	require.NoError(t, err)
	assert.Equal(t, "VERANO10", promo.Code)
	assert.True(t, decimal.NewFromInt(10).Equal(promo.Discount))
	assert.Equal(t, start, promo.StartDate)
	assert.Equal(t, end, promo.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCode_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM promociones").
		WithArgs("NOEXISTE").
		WillReturnRows(sqlmock.NewRows(promoColumns))

	repo := NewRepository(db)
	_, err = repo.GetByCode(context.Background(), "NOEXISTE")

	assert.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestRepository_GetByCode_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM promociones").WillReturnError(errors.New("timeout"))

	repo := NewRepository(db)
	_, err = repo.GetByCode(context.Background(), "VERANO10")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrPromotionNotFound)
}
