package driveup_checkin

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("driveup_checkin: location not found")

	// ErrNoFreeSlots возвращается, когда на локации нет свободных
	// физических мест
	ErrNoFreeSlots = errors.New("driveup_checkin: no free slots at location")

	// ErrVehicleAlreadyParked возвращается, когда по этому номеру на
	// локации уже есть открытая сессия
	ErrVehicleAlreadyParked = errors.New("driveup_checkin: vehicle already has an open session at this location")

	// ErrInvalidPlate возвращается при некорректном госномере
	ErrInvalidPlate = errors.New("driveup_checkin: invalid license plate")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("driveup_checkin: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("driveup_checkin: internal error")
)
