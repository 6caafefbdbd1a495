package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
)

// UseCase use case проверки доступности окна для бронирования (превью)
//
// Читает без блокировок и тем же тестом пересечения, что и создание брони,
// поэтому превью и коммит не могут разойтись в семантике. Атомарности между
// превью и последующим созданием нет: ответ "bookable" может устареть
// к моменту коммита, и клиент обязан быть готов к отказу "capacity reached".
type UseCase struct {
	bookingRepo   BookingRepository
	locationRepo  LocationRepository
	capacityShare float64
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	locationRepo LocationRepository,
	capacityShare float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		locationRepo:  locationRepo,
		capacityShare: capacityShare,
		logger:        logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	window, err := domain.NewTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid window for location=%d: %v", req.LocationID, err)
		return nil, ErrInvalidWindow
	}

	loc, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("CheckAvailability: location=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("%w: failed to get location: %w", ErrInternal, err)
	}

	capacity := domain.BookingCapacity(loc.TotalSlots, uc.capacityShare)

	overlapCount, err := uc.bookingRepo.CountOverlappingActive(ctx, loc.ID, window)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to count overlapping bookings: %w", ErrInternal, err)
	}

	available := capacity - overlapCount
	if available < 0 {
		available = 0
	}

	uc.logger.Info("CheckAvailability: location=%d, %d/%d overlapping bookings, bookable=%t",
		loc.ID, overlapCount, capacity, overlapCount < capacity)

	return &Response{
		LocationID:               loc.ID,
		StartTime:                window.Start,
		EndTime:                  window.End,
		BookingCapacity:          capacity,
		OverlapCount:             overlapCount,
		IsBookable:               overlapCount < capacity,
		SlotsAvailableForBooking: available,
	}, nil
}
