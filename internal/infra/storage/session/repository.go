package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Код PostgreSQL unique_violation - вставка отбита частичным уникальным
// индексом открытых сессий
const pqUniqueViolation = "23505"

var sessionColumns = []string{
	"id",
	"location_id",
	"booking_id",
	"license_plate",
	"entry_time",
	"exit_time",
	"cost",
	"check_in_employee_id",
	"check_out_employee_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сессиями физического пребывания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает открытую сессию (exit_time = NULL)
// Дубликат открытой сессии по (location_id, license_plate) возвращается
// как ErrDuplicateOpenSession
func (r *Repository) Create(ctx context.Context, s *domain.VehicleSession) (*domain.VehicleSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_sessions").
		Columns(
			"location_id",
			"booking_id",
			"license_plate",
			"entry_time",
			"check_in_employee_id",
		).
		Values(
			s.LocationID,
			s.BookingID,
			s.LicensePlate,
			s.EntryTime,
			s.CheckInEmployeeID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateOpenSession
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сессию по ID без блокировки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VehicleSession, error) {
	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("vehicle_sessions").
		Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, selectBuilder, "GetByID")
}

// GetByIDForUpdate получает сессию по ID с эксклюзивной блокировкой строки
// Вызывается только внутри транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.VehicleSession, error) {
	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("vehicle_sessions").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE")
	return r.getOne(ctx, selectBuilder, "GetByIDForUpdate")
}

// GetOpenByPlate ищет открытую сессию по нормализованному номеру на локации
func (r *Repository) GetOpenByPlate(ctx context.Context, locationID int64, plate string) (*domain.VehicleSession, error) {
	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("vehicle_sessions").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"license_plate": plate}).
		Where(squirrel.Eq{"exit_time": nil})
	return r.getOne(ctx, selectBuilder, "GetOpenByPlate")
}

// GetOpenByBookingIDForUpdate ищет открытую сессию, привязанную к брони,
// с эксклюзивной блокировкой строки. Вызывается только внутри транзакции
func (r *Repository) GetOpenByBookingIDForUpdate(ctx context.Context, bookingID int64) (*domain.VehicleSession, error) {
	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("vehicle_sessions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.Eq{"exit_time": nil}).
		Suffix("FOR UPDATE")
	return r.getOne(ctx, selectBuilder, "GetOpenByBookingIDForUpdate")
}

// ListOpenByLocation возвращает все открытые сессии локации
// (кто сейчас физически стоит на парковке)
func (r *Repository) ListOpenByLocation(ctx context.Context, locationID int64) ([]*domain.VehicleSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("vehicle_sessions").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"exit_time": nil}).
		OrderBy("entry_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenByLocation - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.VehicleSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOpenByLocation - scan row: %w", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOpenByLocation - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}

// Close закрывает сессию: проставляет exit_time, cost и сотрудника
// Условие exit_time IS NULL гарантирует, что сессию можно закрыть ровно
// один раз; повторное закрытие возвращает ErrSessionAlreadyClosed
func (r *Repository) Close(ctx context.Context, id int64, exitTime time.Time, cost float64, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicle_sessions").
		Set("exit_time", exitTime).
		Set("cost", cost).
		Set("check_out_employee_id", employeeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"exit_time": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionAlreadyClosed
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, selectBuilder squirrel.SelectBuilder, op string) (*domain.VehicleSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan session: %w", ErrScanRow, op, err)
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.VehicleSession, error) {
	var s domain.VehicleSession
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.LocationID,
		&s.BookingID,
		&s.LicensePlate,
		&s.EntryTime,
		&s.ExitTime,
		&s.Cost,
		&s.CheckInEmployeeID,
		&s.CheckOutEmployeeID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
