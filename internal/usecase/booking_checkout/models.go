package booking_checkout

import "time"

// Request модель запроса на выезд по брони
type Request struct {
	BookingID  int64
	LocationID int64
	EmployeeID int64
}

// Response результат выезда: завершенная бронь с итоговой стоимостью
type Response struct {
	BookingID     int64
	SessionID     int64
	LocationID    int64
	LicensePlate  string
	EntryTime     time.Time
	ExitTime      time.Time
	FinalCost     float64
	BookingStatus string
}
