package check_availability

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	CountOverlappingActive(ctx context.Context, locationID int64, window domain.TimeWindow) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
