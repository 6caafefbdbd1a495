package driveup_checkin

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Location, error)
	DecrementAvailable(ctx context.Context, id int64) error
}

// SessionRepository интерфейс репозитория сессий пребывания
type SessionRepository interface {
	Create(ctx context.Context, s *domain.VehicleSession) (*domain.VehicleSession, error)
	GetOpenByPlate(ctx context.Context, locationID int64, plate string) (*domain.VehicleSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
