package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrForbidden возвращается, когда бронь принадлежит другому
	// пользователю
	ErrForbidden = errors.New("cancel_booking: booking belongs to another user")

	// ErrCannotCancel возвращается, когда бронь не в статусе confirmed;
	// оборачивается с текущим статусом
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrTooLateToCancel возвращается, когда до начала окна брони
	// осталось меньше допустимого срока отмены
	ErrTooLateToCancel = errors.New("cancel_booking: too late to cancel booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
