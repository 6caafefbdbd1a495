package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
)

// UseCase use case создания брони (допуск в пул бронирования)
//
// Проверка емкости и вставка выполняются под эксклюзивной блокировкой
// строки локации: конкурирующие создания броней на одну локацию
// сериализуются, и лимит пересекающихся броней не может быть превышен.
// Физические места (available_slots) здесь не меняются.
type UseCase struct {
	bookingRepo   BookingRepository
	locationRepo  LocationRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	capacityShare float64
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// capacityShare - доля физической вместимости под брони (политика допуска)
func NewUseCase(
	bookingRepo BookingRepository,
	locationRepo LocationRepository,
	txManager TransactionManager,
	capacityShare float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		locationRepo:  locationRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		capacityShare: capacityShare,
		logger:        logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, location=%d, window=[%s, %s)",
		req.UserID, req.LocationID, req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	window, err := domain.NewTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid window for user=%d: %v", req.UserID, err)
		return nil, ErrInvalidWindow
	}

	now := uc.timeProvider.Now()
	if req.StartTime.Before(now) {
		uc.logger.Warn("CreateBooking: start in the past for user=%d, location=%d", req.UserID, req.LocationID)
		return nil, ErrStartInPast
	}

	plate, err := normalizedPlate(req.LicensePlate)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid plate for user=%d: %v", req.UserID, err)
		return nil, err
	}

	var result *domain.Booking

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокировка строки локации - точка сериализации всех
		// конкурирующих созданий броней на эту локацию
		loc, err := uc.locationRepo.GetByIDForUpdate(txCtx, req.LocationID)
		if err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				return ErrLocationNotFound
			}
			return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
		}

		capacity := domain.BookingCapacity(loc.TotalSlots, uc.capacityShare)
		if capacity <= 0 {
			uc.logger.Warn("CreateBooking: location=%d has zero booking capacity (total_slots=%d)",
				loc.ID, loc.TotalSlots)
			return ErrNoBookingCapacity
		}

		overlapCount, err := uc.bookingRepo.CountOverlappingActive(txCtx, loc.ID, window)
		if err != nil {
			return fmt.Errorf("%w: failed to count overlapping bookings: %w", ErrInternal, err)
		}

		if overlapCount >= capacity {
			uc.logger.Warn("CreateBooking: capacity reached at location=%d, %d/%d overlapping bookings",
				loc.ID, overlapCount, capacity)
			return ErrCapacityReached
		}

		uc.logger.Info("CreateBooking: admitting, %d/%d overlapping bookings at location=%d",
			overlapCount, capacity, loc.ID)

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:             req.UserID,
			LocationID:         loc.ID,
			StartTime:          req.StartTime,
			EndTime:            req.EndTime,
			Status:             domain.StatusConfirmed,
			LicensePlateBooked: plate,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		BookingID:    result.ID,
		UserID:       result.UserID,
		LocationID:   result.LocationID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		LicensePlate: result.LicensePlateBooked,
		CreatedAt:    result.CreatedAt,
	}, nil
}
