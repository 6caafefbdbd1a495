package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a time-windowed parking reservation
//
// Жизненный цикл статусов:
//
//	confirmed  -> checked_in (сотрудник впустил автомобиль)
//	confirmed  -> cancelled  (отмена до физического заезда)
//	checked_in -> completed  (выезд)
//	checked_in -> cancelled  (принудительная отмена активной стоянки)
//	completed, cancelled     - терминальные
//
// Переход в checked_in допустим только вместе с созданием VehicleSession
// в той же транзакции; переход в completed - только вместе с её закрытием.
type Booking struct {
	ID         int64
	UserID     int64
	LocationID int64
	StartTime  time.Time
	EndTime    time.Time
	Status     BookingStatus

	// Номер, указанный при создании брони (опционально)
	LicensePlateBooked *string
	// Номер, с которым автомобиль фактически заехал
	CheckedInLicensePlate *string

	ActualEntryTime *time.Time
	ActualExitTime  *time.Time
	FinalCost       *float64

	CheckInEmployeeID  *int64
	CheckOutEmployeeID *int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window возвращает временное окно брони
func (b *Booking) Window() TimeWindow {
	return TimeWindow{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking still commits a slot in the
// booking-admission pool (counts toward the overlap limit)
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanCheckIn returns true if the booked vehicle can be physically admitted
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanComplete returns true if the booking can be checked out
func (b *Booking) CanComplete() bool {
	return b.Status == StatusCheckedIn
}

// CanBeCancelledByUser проверяет право пользователя на самостоятельную отмену:
// бронь еще confirmed и до начала окна остается больше notice
// Физические места при этом не трогаются - заезда еще не было
func (b *Booking) CanBeCancelledByUser(now time.Time, notice time.Duration) bool {
	return b.Status == StatusConfirmed && b.StartTime.Sub(now) > notice
}

// ActiveStatuses статусы, учитываемые при подсчете занятости пула бронирования
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
}
