package cancel_booking

import "time"

// Request модель запроса на отмену брони пользователем
type Request struct {
	BookingID int64
	UserID    int64
	Reason    *string
}

// Response результат отмены
type Response struct {
	BookingID   int64
	Status      string
	CancelledAt time.Time
	Reason      *string
}
