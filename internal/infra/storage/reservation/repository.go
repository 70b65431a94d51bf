package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/psqlbuilder"
)

const table = "reservas"

var columns = []string{
	"identificacion",
	"cliente",
	"email",
	"telefono",
	"tipo_reserva",
	"fecha_ingreso",
	"fecha_salida",
	"adultos",
	"ninos",
	"parejas",
	"habitaciones",
	"precio",
	"codigo_promocion",
	"spa_plan",
	"spa_personas",
	"picnic_plan",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			reservation.Identification,
			reservation.CustomerName,
			reservation.Email,
			reservation.Phone,
			string(reservation.Kind),
			reservation.CheckIn,
			reservation.CheckOut,
			reservation.Adults,
			reservation.Children,
			reservation.Couples,
			reservation.Room,
			reservation.Price,
			reservation.PromotionCode,
			reservation.SpaPlan,
			reservation.SpaPersons,
			reservation.PicnicPlan,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// FindOverlapping возвращает заявки на тот же номер, чей период пересекается с [CheckIn, CheckOut):
// fecha_ingreso < CheckOut AND fecha_salida > CheckIn.
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) FindOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"habitaciones": filter.Room}).
		Where(squirrel.Lt{"fecha_ingreso": filter.CheckOut}).
		Where(squirrel.Gt{"fecha_salida": filter.CheckIn}).
		OrderBy("fecha_ingreso ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс заявок
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var kind string

		err := rows.Scan(
			&res.Identification,
			&res.CustomerName,
			&res.Email,
			&res.Phone,
			&kind,
			&res.CheckIn,
			&res.CheckOut,
			&res.Adults,
			&res.Children,
			&res.Couples,
			&res.Room,
			&res.Price,
			&res.PromotionCode,
			&res.SpaPlan,
			&res.SpaPersons,
			&res.PicnicPlan,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.Kind = domain.ReservationKind(kind)
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
