package booking_checkout

import (
	"context"

	bookingCheckout "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkout"
)

type BookingCheckOutUseCase interface {
	Execute(ctx context.Context, req *bookingCheckout.Request) (*bookingCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
