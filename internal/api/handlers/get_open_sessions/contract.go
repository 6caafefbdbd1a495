package get_open_sessions

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
)

type SessionService interface {
	ListOpenByLocation(ctx context.Context, locationID int64) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
