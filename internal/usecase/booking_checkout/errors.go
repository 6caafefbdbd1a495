package booking_checkout

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	// на указанной локации
	ErrBookingNotFound = errors.New("booking_checkout: booking not found")

	// ErrBookingNotCheckedIn возвращается при попытке выезда по брони
	// не в статусе checked_in; оборачивается с текущим статусом
	ErrBookingNotCheckedIn = errors.New("booking_checkout: booking is not checked in")

	// ErrInconsistentState возвращается, когда у брони в статусе
	// checked_in нет открытой сессии: инвариант хранилища нарушен,
	// автоматическое восстановление невозможно
	ErrInconsistentState = errors.New("booking_checkout: checked-in booking has no open session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_checkout: internal error")
)
