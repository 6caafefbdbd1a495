package driveup_checkout

import (
	"time"

	driveupCheckout "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkout"
)

// CheckOutResponse HTTP response model
type CheckOutResponse struct {
	SessionID    int64   `json:"sessionId"`
	LocationID   int64   `json:"locationId"`
	BookingID    *int64  `json:"bookingId,omitempty"`
	LicensePlate string  `json:"licensePlate"`
	EntryTime    string  `json:"entryTime"`
	ExitTime     string  `json:"exitTime"`
	Cost         float64 `json:"cost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *driveupCheckout.Response) *CheckOutResponse {
	return &CheckOutResponse{
		SessionID:    resp.SessionID,
		LocationID:   resp.LocationID,
		BookingID:    resp.BookingID,
		LicensePlate: resp.LicensePlate,
		EntryTime:    resp.EntryTime.Format(time.RFC3339),
		ExitTime:     resp.ExitTime.Format(time.RFC3339),
		Cost:         resp.Cost,
	}
}
