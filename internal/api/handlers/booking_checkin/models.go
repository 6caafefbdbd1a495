package booking_checkin

import (
	"time"

	bookingCheckin "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkin"
)

// CheckInRequest HTTP request model
type CheckInRequest struct {
	LicensePlate string `json:"licensePlate"`
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	BookingID     int64  `json:"bookingId"`
	SessionID     int64  `json:"sessionId"`
	LocationID    int64  `json:"locationId"`
	LicensePlate  string `json:"licensePlate"`
	EntryTime     string `json:"entryTime"`
	BookingStatus string `json:"bookingStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingCheckin.Response) *CheckInResponse {
	return &CheckInResponse{
		BookingID:     resp.BookingID,
		SessionID:     resp.SessionID,
		LocationID:    resp.LocationID,
		LicensePlate:  resp.LicensePlate,
		EntryTime:     resp.EntryTime.Format(time.RFC3339),
		BookingStatus: resp.BookingStatus,
	}
}
