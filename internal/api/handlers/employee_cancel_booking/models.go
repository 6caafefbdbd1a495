package employee_cancel_booking

import (
	"time"

	employeeCancel "github.com/m04kA/SMC-ParkingService/internal/usecase/employee_cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID     int64   `json:"bookingId"`
	Status        string  `json:"status"`
	CancelledAt   string  `json:"cancelledAt"`
	Reason        *string `json:"reason,omitempty"`
	SessionClosed bool    `json:"sessionClosed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *employeeCancel.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:     resp.BookingID,
		Status:        resp.Status,
		CancelledAt:   resp.CancelledAt.Format(time.RFC3339),
		Reason:        resp.Reason,
		SessionClosed: resp.SessionClosed,
	}
}
