package check_availability

import "time"

// Request модель запроса на проверку доступности окна
type Request struct {
	LocationID int64
	StartTime  time.Time
	EndTime    time.Time
}

// Response результат проверки доступности
type Response struct {
	LocationID               int64
	StartTime                time.Time
	EndTime                  time.Time
	BookingCapacity          int
	OverlapCount             int
	IsBookable               bool
	SlotsAvailableForBooking int
}
