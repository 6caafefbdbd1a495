package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}
	return nil
}

// normalizedPlate нормализует опциональный госномер и проверяет его границы
// Возвращает nil, если номер не был передан
func normalizedPlate(plate *string) (*string, error) {
	if plate == nil {
		return nil, nil
	}
	normalized := domain.NormalizePlate(*plate)
	if !domain.IsValidPlate(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlate, *plate)
	}
	return &normalized, nil
}
