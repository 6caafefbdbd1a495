package sessions

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий пребывания
type SessionRepository interface {
	ListOpenByLocation(ctx context.Context, locationID int64) ([]*domain.VehicleSession, error)
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
