package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"location_id",
	"start_time",
	"end_time",
	"status",
	"license_plate_booked",
	"checked_in_license_plate",
	"actual_entry_time",
	"actual_exit_time",
	"final_cost",
	"check_in_employee_id",
	"check_out_employee_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями
//
// Все переходы статусов - защищенные апдейты с условием на текущий статус:
// проигранная гонка видна как 0 затронутых строк, а не как молчаливая
// перезапись чужого перехода.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронь в статусе confirmed
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"location_id",
			"start_time",
			"end_time",
			"status",
			"license_plate_booked",
		).
		Values(
			b.UserID,
			b.LocationID,
			b.StartTime,
			b.EndTime,
			b.Status,
			b.LicensePlateBooked,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронь по ID без блокировки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронь по ID с эксклюзивной блокировкой строки
// Вызывается только внутри транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// CountOverlappingActive считает активные брони локации (confirmed, checked_in),
// чьи окна реально пересекаются с [window.Start, window.End)
//
// Тест пересечения полуоткрытых интервалов:
// existing.start < window.end AND existing.end > window.start
// Вызывается под блокировкой строки локации, чтобы конкурирующие
// создания броней были сериализованы.
func (r *Repository) CountOverlappingActive(ctx context.Context, locationID int64, window domain.TimeWindow) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"start_time": window.End}).
		Where(squirrel.Gt{"end_time": window.Start}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlappingActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlappingActive - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// GetByUserID получает брони пользователя, опционально фильтруя по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// MarkCheckedIn переводит бронь confirmed -> checked_in
// Возвращает ErrBookingNotConfirmed, если бронь уже не в статусе confirmed
func (r *Repository) MarkCheckedIn(ctx context.Context, id int64, plate string, employeeID int64, entryTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCheckedIn).
		Set("checked_in_license_plate", plate).
		Set("actual_entry_time", entryTime).
		Set("check_in_employee_id", employeeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCheckedIn - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, query, args, "MarkCheckedIn", ErrBookingNotConfirmed)
}

// MarkCompleted переводит бронь checked_in -> completed
// Возвращает ErrBookingNotCheckedIn, если бронь уже не в статусе checked_in
func (r *Repository) MarkCompleted(ctx context.Context, id int64, exitTime time.Time, finalCost float64, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("actual_exit_time", exitTime).
		Set("final_cost", finalCost).
		Set("check_out_employee_id", employeeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusCheckedIn}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, query, args, "MarkCompleted", ErrBookingNotCheckedIn)
}

// MarkCancelled переводит активную бронь (confirmed или checked_in) в cancelled
// Возвращает ErrBookingNotActive, если бронь уже в терминальном статусе
func (r *Repository) MarkCancelled(ctx context.Context, id int64, reason *string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, query, args, "MarkCancelled", ErrBookingNotActive)
}

// execGuarded выполняет защищенный апдейт и маппит 0 затронутых строк
// в переданную доменную ошибку
func (r *Repository) execGuarded(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string, zeroRowsErr error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return zeroRowsErr
	}

	return nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.LocationID,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.LicensePlateBooked,
		&b.CheckedInLicensePlate,
		&b.ActualEntryTime,
		&b.ActualExitTime,
		&b.FinalCost,
		&b.CheckInEmployeeID,
		&b.CheckOutEmployeeID,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
