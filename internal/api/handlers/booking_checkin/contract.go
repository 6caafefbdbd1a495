package booking_checkin

import (
	"context"

	bookingCheckin "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkin"
)

type BookingCheckInUseCase interface {
	Execute(ctx context.Context, req *bookingCheckin.Request) (*bookingCheckin.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
