package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var locationColumns = []string{
	"id",
	"name",
	"address",
	"total_slots",
	"available_slots",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с локациями парковки
//
// Строка локации - единственная точка сериализации всех мутаций
// физических мест: use cases берут её через GetByIDForUpdate,
// а available_slots меняют только защищенными апдейтами ниже.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает локацию
// available_slots инициализируется равным total_slots
func (r *Repository) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("locations").
		Columns("name", "address", "total_slots", "available_slots").
		Values(loc.Name, loc.Address, loc.TotalSlots, loc.TotalSlots).
		Suffix("RETURNING id, available_slots, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loc.ID,
		&loc.AvailableSlots,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return loc, nil
}

// GetByID получает локацию по ID без блокировки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает локацию по ID с эксклюзивной блокировкой строки
// Вызывается только внутри транзакции; блокировка держится до её конца
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Location, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var loc domain.Location
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loc.ID,
		&loc.Name,
		&loc.Address,
		&loc.TotalSlots,
		&loc.AvailableSlots,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan location: %w", ErrScanRow, err)
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return &loc, nil
}

// List возвращает все локации
func (r *Repository) List(ctx context.Context) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		var loc domain.Location
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&loc.ID,
			&loc.Name,
			&loc.Address,
			&loc.TotalSlots,
			&loc.AvailableSlots,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		loc.CreatedAt = createdAt.Time
		loc.UpdatedAt = updatedAt.Time

		locations = append(locations, &loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return locations, nil
}

// DecrementAvailable защищенно уменьшает available_slots на 1
// Условие available_slots > 0 в WHERE не дает счетчику уйти в минус
// даже при гонке; 0 затронутых строк означает отсутствие свободных мест
func (r *Repository) DecrementAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("locations").
		Set("available_slots", squirrel.Expr("available_slots - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"available_slots": 0}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNoFreeSlots
	}

	return nil
}

// IncrementAvailable увеличивает available_slots на 1 с ограничением сверху:
// LEAST(total_slots, available_slots + 1), счетчик никогда не превысит емкость
func (r *Repository) IncrementAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("locations").
		Set("available_slots", squirrel.Expr("LEAST(total_slots, available_slots + 1)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrLocationNotFound
	}

	return nil
}
