package booking_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	MarkCompleted(ctx context.Context, id int64, exitTime time.Time, finalCost float64, employeeID int64) error
}

// SessionRepository интерфейс репозитория сессий пребывания
type SessionRepository interface {
	GetOpenByBookingIDForUpdate(ctx context.Context, bookingID int64) (*domain.VehicleSession, error)
	Close(ctx context.Context, id int64, exitTime time.Time, cost float64, employeeID int64) error
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Location, error)
	IncrementAvailable(ctx context.Context, id int64) error
}

// RateSource источник текущей почасовой ставки
type RateSource interface {
	HourlyRate(ctx context.Context) (float64, error)
}

// Alerter канал сигнализации о расхождениях данных (метрики/алерты)
type Alerter interface {
	DataInconsistency(operation string)
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

// NopAlerter заглушка для окружений без метрик
type NopAlerter struct{}

// DataInconsistency ничего не делает
func (NopAlerter) DataInconsistency(string) {}
