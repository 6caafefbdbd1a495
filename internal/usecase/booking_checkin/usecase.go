package booking_checkin

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
)

// UseCase use case заезда по брони
//
// Бронь гарантирует допуск в пул бронирования, но не конкретное
// физическое место, поэтому заезд проверяет available_slots так же,
// как drive-up. Перевод брони в checked_in, создание сессии и декремент
// счетчика атомарны; блокировки берутся в порядке бронь -> локация.
type UseCase struct {
	bookingRepo  BookingRepository
	locationRepo LocationRepository
	sessionRepo  SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	locationRepo LocationRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		locationRepo: locationRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case заезда по брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookingCheckIn: booking=%d, location=%d, employee=%d",
		req.BookingID, req.LocationID, req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookingCheckIn: validation failed: %v", err)
		return nil, err
	}

	plate := domain.NormalizePlate(req.LicensePlate)
	if !domain.IsValidPlate(plate) {
		uc.logger.Warn("BookingCheckIn: invalid plate for booking=%d", req.BookingID)
		return nil, ErrInvalidPlate
	}

	entryTime := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to lock booking: %w", ErrInternal, err)
		}

		// Бронь с чужой локации для этого поста заезда не существует
		if b.LocationID != req.LocationID {
			uc.logger.Warn("BookingCheckIn: booking=%d belongs to location=%d, requested location=%d",
				b.ID, b.LocationID, req.LocationID)
			return ErrBookingNotFound
		}

		if !b.CanCheckIn() {
			uc.logger.Warn("BookingCheckIn: booking=%d is %s, check-in rejected", b.ID, b.Status)
			return fmt.Errorf("%w: booking is %s", ErrBookingNotConfirmed, b.Status)
		}

		if b.LicensePlateBooked != nil && *b.LicensePlateBooked != plate {
			uc.logger.Warn("BookingCheckIn: booking=%d booked plate %s, arrived with %s",
				b.ID, *b.LicensePlateBooked, plate)
		}

		loc, err := uc.locationRepo.GetByIDForUpdate(txCtx, b.LocationID)
		if err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				return fmt.Errorf("%w: location %d of booking %d is missing: %w",
					ErrInternal, b.LocationID, b.ID, err)
			}
			return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
		}

		if !loc.HasFreeSlot() {
			uc.logger.Warn("BookingCheckIn: no free slots at location=%d for booking=%d", loc.ID, b.ID)
			return ErrNoFreeSlots
		}

		_, err = uc.sessionRepo.GetOpenByPlate(txCtx, loc.ID, plate)
		if err == nil {
			uc.logger.Warn("BookingCheckIn: plate already parked at location=%d, booking=%d", loc.ID, b.ID)
			return ErrVehicleAlreadyParked
		}
		if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return fmt.Errorf("%w: failed to check open session: %w", ErrInternal, err)
		}

		sess, err := uc.sessionRepo.Create(txCtx, &domain.VehicleSession{
			LocationID:        loc.ID,
			BookingID:         &b.ID,
			LicensePlate:      plate,
			EntryTime:         entryTime,
			CheckInEmployeeID: req.EmployeeID,
		})
		if err != nil {
			if errors.Is(err, sessionRepo.ErrDuplicateOpenSession) {
				return ErrVehicleAlreadyParked
			}
			return fmt.Errorf("%w: failed to create session: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.MarkCheckedIn(txCtx, b.ID, plate, req.EmployeeID, entryTime); err != nil {
			return fmt.Errorf("%w: failed to mark booking checked in: %w", ErrInternal, err)
		}

		if err := uc.locationRepo.DecrementAvailable(txCtx, loc.ID); err != nil {
			if errors.Is(err, locationRepo.ErrNoFreeSlots) {
				return ErrNoFreeSlots
			}
			return fmt.Errorf("%w: failed to decrement available slots: %w", ErrInternal, err)
		}

		result = &Response{
			BookingID:     b.ID,
			SessionID:     sess.ID,
			LocationID:    loc.ID,
			LicensePlate:  plate,
			EntryTime:     entryTime,
			BookingStatus: string(domain.StatusCheckedIn),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookingCheckIn: booking=%d checked in, session id=%d", result.BookingID, result.SessionID)

	return result, nil
}

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}
	return nil
}
