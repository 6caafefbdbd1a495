package driveup_checkout

import (
	"context"

	driveupCheckout "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkout"
)

type DriveUpCheckOutUseCase interface {
	Execute(ctx context.Context, req *driveupCheckout.Request) (*driveupCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
