package employee_cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	// на указанной локации
	ErrBookingNotFound = errors.New("employee_cancel_booking: booking not found")

	// ErrAlreadyTerminal возвращается при попытке отменить бронь
	// в терминальном статусе; оборачивается с текущим статусом
	ErrAlreadyTerminal = errors.New("employee_cancel_booking: booking is already in a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("employee_cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("employee_cancel_booking: internal error")
)
