package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingNotConfirmed возвращается, когда защищенный переход
	// confirmed -> checked_in не нашел брони в статусе confirmed
	ErrBookingNotConfirmed = errors.New("booking.repository: booking is not confirmed")

	// ErrBookingNotCheckedIn возвращается, когда защищенный переход
	// checked_in -> completed не нашел брони в статусе checked_in
	ErrBookingNotCheckedIn = errors.New("booking.repository: booking is not checked in")

	// ErrBookingNotActive возвращается при попытке отменить бронь
	// в терминальном статусе
	ErrBookingNotActive = errors.New("booking.repository: booking is not active")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
