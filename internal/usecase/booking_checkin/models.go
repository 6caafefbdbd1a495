package booking_checkin

import "time"

// Request модель запроса на заезд по брони
type Request struct {
	BookingID    int64
	LocationID   int64
	LicensePlate string
	EmployeeID   int64
}

// Response результат заезда: бронь в статусе checked_in и открытая сессия
type Response struct {
	BookingID     int64
	SessionID     int64
	LocationID    int64
	LicensePlate  string
	EntryTime     time.Time
	BookingStatus string
}
