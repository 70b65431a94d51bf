package reservation

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

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/dbmetrics"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string {
	return &s
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	checkIn := mustDate(t, "2024-06-03")
	checkOut := mustDate(t, "2024-06-07")

	res := &domain.Reservation{
		Identification: "1098765432",
		CustomerName:   "Laura Gómez",
		Email:          "laura@example.com",
		Phone:          strPtr("3001234567"),
		Kind:           domain.KindRoom,
		CheckIn:        &checkIn,
		CheckOut:       &checkOut,
		Adults:         2,
		Couples:        1,
		Room:           strPtr(domain.RoomJacuzziSuite),
		Price:          decimal.NewFromInt(477000),
		PromotionCode:  strPtr("VERANO10"),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservas (identificacion,cliente,email,telefono,tipo_reserva,fecha_ingreso,fecha_salida,adultos,ninos,parejas,habitaciones,precio,codigo_promocion,spa_plan,spa_personas,picnic_plan)")).
		WithArgs(
			"1098765432",
			"Laura Gómez",
			"laura@example.com",
			"3001234567",
			"habitacion",
			checkIn,
			checkOut,
			2,
			0,
			1,
			domain.RoomJacuzziSuite,
			decimal.NewFromInt(477000),
			"VERANO10",
			nil,
			0,
			0,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewRepository(db)
	require.NoError(t, repo.Create(context.Background(), res))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservas").WillReturnError(errors.New("connection reset"))

	repo := NewRepository(db)
	err = repo.Create(context.Background(), &domain.Reservation{Kind: "spa", Price: decimal.Zero})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	checkIn := mustDate(t, "2024-06-03")
	checkOut := mustDate(t, "2024-06-07")

	rows := sqlmock.NewRows(columns).AddRow(
		"52123456", "Carlos Ruiz", "carlos@example.com", nil, "habitacion",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-05"),
		2, 1, 1, domain.RoomJacuzziSuite, "530000", nil, nil, 0, 0,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservas WHERE habitaciones = $1 AND fecha_ingreso < $2 AND fecha_salida > $3 ORDER BY fecha_ingreso ASC")).
		WithArgs(domain.RoomJacuzziSuite, checkOut, checkIn).
		WillReturnRows(rows)

	repo := NewRepository(db)
	found, err := repo.FindOverlapping(context.Background(), domain.OverlapFilter{
		Room:     domain.RoomJacuzziSuite,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Carlos Ruiz", found[0].CustomerName)
	assert.Equal(t, domain.KindRoom, found[0].Kind)
	assert.Nil(t, found[0].Phone)
	require.NotNil(t, found[0].Room)
	assert.Equal(t, domain.RoomJacuzziSuite, *found[0].Room)
	assert.True(t, decimal.NewFromInt(530000).Equal(found[0].Price))
	assert.True(t, found[0].Overlaps(checkIn, checkOut))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOverlapping_LocksInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY fecha_ingreso ASC FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	wrapped := dbmetrics.Wrap(db, nil)
	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	repo := NewRepository(wrapped)
	found, err := repo.FindOverlapping(dbmetrics.WithTx(context.Background(), tx), domain.OverlapFilter{
		Room:     domain.RoomSingle,
		CheckIn:  mustDate(t, "2024-06-05"),
		CheckOut: mustDate(t, "2024-06-08"),
	})

	require.NoError(t, err)
	assert.Empty(t, found)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOverlapping_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM reservas").WillReturnError(errors.New("relation does not exist"))

	repo := NewRepository(db)
	_, err = repo.FindOverlapping(context.Background(), domain.OverlapFilter{Room: domain.RoomSingle})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
}
