package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// GetUserBookingsRequest запрос на получение броней пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// BookingResponse ответ с данными брони
type BookingResponse struct {
	ID                    int64      `json:"id"`
	UserID                int64      `json:"userId"`
	LocationID            int64      `json:"locationId"`
	StartTime             time.Time  `json:"startTime"`
	EndTime               time.Time  `json:"endTime"`
	Status                string     `json:"status"`
	LicensePlateBooked    *string    `json:"licensePlateBooked,omitempty"`
	CheckedInLicensePlate *string    `json:"checkedInLicensePlate,omitempty"`
	ActualEntryTime       *time.Time `json:"actualEntryTime,omitempty"`
	ActualExitTime        *time.Time `json:"actualExitTime,omitempty"`
	FinalCost             *float64   `json:"finalCost,omitempty"`
	CancellationReason    *string    `json:"cancellationReason,omitempty"`
	CancelledAt           *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// BookingListResponse ответ со списком броней
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed, domain.StatusCheckedIn, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                    b.ID,
		UserID:                b.UserID,
		LocationID:            b.LocationID,
		StartTime:             b.StartTime,
		EndTime:               b.EndTime,
		Status:                string(b.Status),
		LicensePlateBooked:    b.LicensePlateBooked,
		CheckedInLicensePlate: b.CheckedInLicensePlate,
		ActualEntryTime:       b.ActualEntryTime,
		ActualExitTime:        b.ActualExitTime,
		FinalCost:             b.FinalCost,
		CancellationReason:    b.CancellationReason,
		CancelledAt:           b.CancelledAt,
		CreatedAt:             b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response модель
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
