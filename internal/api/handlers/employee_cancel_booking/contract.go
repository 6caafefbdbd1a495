package employee_cancel_booking

import (
	"context"

	employeeCancel "github.com/m04kA/SMC-ParkingService/internal/usecase/employee_cancel_booking"
)

type EmployeeCancelBookingUseCase interface {
	Execute(ctx context.Context, req *employeeCancel.Request) (*employeeCancel.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
