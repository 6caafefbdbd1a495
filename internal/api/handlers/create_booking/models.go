package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	LocationID   int64   `json:"locationId"`
	StartTime    string  `json:"startTime"` // RFC3339
	EndTime      string  `json:"endTime"`   // RFC3339
	LicensePlate *string `json:"licensePlate,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	LocationID   int64   `json:"locationId"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	LicensePlate *string `json:"licensePlate,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		LocationID:   r.LocationID,
		StartTime:    startTime,
		EndTime:      endTime,
		LicensePlate: r.LicensePlate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.BookingID,
		UserID:       resp.UserID,
		LocationID:   resp.LocationID,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		LicensePlate: resp.LicensePlate,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
