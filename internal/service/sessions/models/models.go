package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SessionResponse ответ с данными открытой сессии
type SessionResponse struct {
	ID           int64     `json:"id"`
	LocationID   int64     `json:"locationId"`
	BookingID    *int64    `json:"bookingId,omitempty"`
	LicensePlate string    `json:"licensePlate"`
	EntryTime    time.Time `json:"entryTime"`
	IsDriveUp    bool      `json:"isDriveUp"`
}

// SessionListResponse ответ со списком открытых сессий локации
type SessionListResponse struct {
	LocationID     int64              `json:"locationId"`
	TotalSlots     int                `json:"totalSlots"`
	AvailableSlots int                `json:"availableSlots"`
	Sessions       []*SessionResponse `json:"sessions"`
	Total          int                `json:"total"`
}

// FromDomainSession конвертирует domain.VehicleSession в response модель
func FromDomainSession(s *domain.VehicleSession) *SessionResponse {
	return &SessionResponse{
		ID:           s.ID,
		LocationID:   s.LocationID,
		BookingID:    s.BookingID,
		LicensePlate: s.LicensePlate,
		EntryTime:    s.EntryTime,
		IsDriveUp:    s.IsDriveUp(),
	}
}
