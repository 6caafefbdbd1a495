package driveup_checkout

import "time"

// Request модель запроса на выезд
type Request struct {
	SessionID  int64
	LocationID int64
	EmployeeID int64
}

// Response результат выезда: закрытая сессия с рассчитанной стоимостью
type Response struct {
	SessionID    int64
	LocationID   int64
	BookingID    *int64
	LicensePlate string
	EntryTime    time.Time
	ExitTime     time.Time
	Cost         float64
}
