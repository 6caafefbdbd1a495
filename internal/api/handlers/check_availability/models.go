package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	LocationID               int64  `json:"locationId"`
	StartTime                string `json:"startTime"`
	EndTime                  string `json:"endTime"`
	BookingCapacity          int    `json:"bookingCapacity"`
	OverlapCount             int    `json:"overlapCount"`
	IsBookable               bool   `json:"isBookable"`
	SlotsAvailableForBooking int    `json:"slotsAvailableForBooking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		LocationID:               resp.LocationID,
		StartTime:                resp.StartTime.Format(time.RFC3339),
		EndTime:                  resp.EndTime.Format(time.RFC3339),
		BookingCapacity:          resp.BookingCapacity,
		OverlapCount:             resp.OverlapCount,
		IsBookable:               resp.IsBookable,
		SlotsAvailableForBooking: resp.SlotsAvailableForBooking,
	}
}
