package driveup_checkin

import "time"

// Request модель запроса на заезд без брони
type Request struct {
	LocationID   int64
	LicensePlate string
	EmployeeID   int64
}

// Response результат заезда: открытая сессия пребывания
type Response struct {
	SessionID         int64
	LocationID        int64
	LicensePlate      string
	EntryTime         time.Time
	CheckInEmployeeID int64
}
