package create_booking

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrInvalidWindow возвращается при некорректном временном окне (end <= start)
	ErrInvalidWindow = errors.New("create_booking: invalid time window")

	// ErrStartInPast возвращается, когда начало окна уже в прошлом
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrInvalidPlate возвращается при некорректном госномере
	ErrInvalidPlate = errors.New("create_booking: invalid license plate")

	// ErrNoBookingCapacity возвращается, когда у локации нулевая емкость
	// пула бронирования (floor(total_slots * share) == 0)
	ErrNoBookingCapacity = errors.New("create_booking: location has no booking capacity")

	// ErrCapacityReached возвращается, когда пересекающихся активных броней
	// уже не меньше емкости пула бронирования
	ErrCapacityReached = errors.New("create_booking: booking capacity reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
