package tariff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository доступ к настройкам тарифа
//
// Таблица tariff_settings хранит единственную строку с текущей почасовой
// ставкой; она читается в момент выезда. Управляет ставкой внешняя
// админская подсистема, здесь тариф только читается.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифа
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// HourlyRate возвращает текущую почасовую ставку
func (r *Repository) HourlyRate(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("hourly_rate").
		From("tariff_settings").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: HourlyRate - build select query: %v", ErrBuildQuery, err)
	}

	var rate float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rate)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTariffNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: HourlyRate - scan rate: %w", ErrScanRow, err)
	}

	return rate, nil
}
