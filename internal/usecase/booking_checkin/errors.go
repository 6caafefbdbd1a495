package booking_checkin

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	// на указанной локации
	ErrBookingNotFound = errors.New("booking_checkin: booking not found")

	// ErrBookingNotConfirmed возвращается при попытке заезда по брони
	// не в статусе confirmed; оборачивается с текущим статусом
	ErrBookingNotConfirmed = errors.New("booking_checkin: booking is not confirmed")

	// ErrNoFreeSlots возвращается, когда на локации нет свободных
	// физических мест
	ErrNoFreeSlots = errors.New("booking_checkin: no free slots at location")

	// ErrVehicleAlreadyParked возвращается, когда по этому номеру на
	// локации уже есть открытая сессия
	ErrVehicleAlreadyParked = errors.New("booking_checkin: vehicle already has an open session at this location")

	// ErrInvalidPlate возвращается при некорректном госномере
	ErrInvalidPlate = errors.New("booking_checkin: invalid license plate")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_checkin: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_checkin: internal error")
)
