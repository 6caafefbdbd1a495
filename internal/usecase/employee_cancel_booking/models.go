package employee_cancel_booking

import "time"

// Request модель запроса на принудительную отмену брони сотрудником
type Request struct {
	BookingID  int64
	LocationID int64
	EmployeeID int64
	Reason     *string
}

// Response результат отмены
type Response struct {
	BookingID   int64
	Status      string
	CancelledAt time.Time
	Reason      *string

	// SessionClosed true, если вместе с отменой была закрыта
	// открытая сессия пребывания
	SessionClosed bool
}
