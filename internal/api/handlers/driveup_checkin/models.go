package driveup_checkin

import (
	"time"

	driveupCheckin "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkin"
)

// CheckInRequest HTTP request model
type CheckInRequest struct {
	LicensePlate string `json:"licensePlate"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID    int64  `json:"sessionId"`
	LocationID   int64  `json:"locationId"`
	LicensePlate string `json:"licensePlate"`
	EntryTime    string `json:"entryTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *driveupCheckin.Response) *SessionResponse {
	return &SessionResponse{
		SessionID:    resp.SessionID,
		LocationID:   resp.LocationID,
		LicensePlate: resp.LicensePlate,
		EntryTime:    resp.EntryTime.Format(time.RFC3339),
	}
}
