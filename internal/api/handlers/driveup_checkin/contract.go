package driveup_checkin

import (
	"context"

	driveupCheckin "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkin"
)

type DriveUpCheckInUseCase interface {
	Execute(ctx context.Context, req *driveupCheckin.Request) (*driveupCheckin.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
