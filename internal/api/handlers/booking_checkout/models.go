package booking_checkout

import (
	"time"

	bookingCheckout "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkout"
)

// CheckOutResponse HTTP response model
type CheckOutResponse struct {
	BookingID     int64   `json:"bookingId"`
	SessionID     int64   `json:"sessionId"`
	LocationID    int64   `json:"locationId"`
	LicensePlate  string  `json:"licensePlate"`
	EntryTime     string  `json:"entryTime"`
	ExitTime      string  `json:"exitTime"`
	FinalCost     float64 `json:"finalCost"`
	BookingStatus string  `json:"bookingStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingCheckout.Response) *CheckOutResponse {
	return &CheckOutResponse{
		BookingID:     resp.BookingID,
		SessionID:     resp.SessionID,
		LocationID:    resp.LocationID,
		LicensePlate:  resp.LicensePlate,
		EntryTime:     resp.EntryTime.Format(time.RFC3339),
		ExitTime:      resp.ExitTime.Format(time.RFC3339),
		FinalCost:     resp.FinalCost,
		BookingStatus: resp.BookingStatus,
	}
}
