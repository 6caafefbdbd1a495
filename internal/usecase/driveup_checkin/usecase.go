package driveup_checkin

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
)

// UseCase use case заезда без брони (drive-up)
//
// Сотрудник фиксирует физический заезд автомобиля. Проверка свободных
// мест, проверка дубликата открытой сессии, вставка сессии и декремент
// available_slots выполняются атомарно под блокировкой строки локации.
type UseCase struct {
	sessionRepo  SessionRepository
	locationRepo LocationRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	locationRepo LocationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case заезда без брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DriveUpCheckIn: location=%d, employee=%d", req.LocationID, req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DriveUpCheckIn: validation failed: %v", err)
		return nil, err
	}

	plate := domain.NormalizePlate(req.LicensePlate)
	if !domain.IsValidPlate(plate) {
		uc.logger.Warn("DriveUpCheckIn: invalid plate at location=%d", req.LocationID)
		return nil, ErrInvalidPlate
	}

	entryTime := uc.timeProvider.Now()

	var result *domain.VehicleSession

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокировка строки локации сериализует конкурирующие заезды
		// и выезды, счетчик available_slots меняется только под ней
		loc, err := uc.locationRepo.GetByIDForUpdate(txCtx, req.LocationID)
		if err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				return ErrLocationNotFound
			}
			return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
		}

		if !loc.HasFreeSlot() {
			uc.logger.Warn("DriveUpCheckIn: no free slots at location=%d (available=%d)",
				loc.ID, loc.AvailableSlots)
			return ErrNoFreeSlots
		}

		_, err = uc.sessionRepo.GetOpenByPlate(txCtx, loc.ID, plate)
		if err == nil {
			uc.logger.Warn("DriveUpCheckIn: plate already parked at location=%d", loc.ID)
			return ErrVehicleAlreadyParked
		}
		if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return fmt.Errorf("%w: failed to check open session: %w", ErrInternal, err)
		}

		created, err := uc.sessionRepo.Create(txCtx, &domain.VehicleSession{
			LocationID:        loc.ID,
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

		if err := uc.locationRepo.DecrementAvailable(txCtx, loc.ID); err != nil {
			if errors.Is(err, locationRepo.ErrNoFreeSlots) {
				return ErrNoFreeSlots
			}
			return fmt.Errorf("%w: failed to decrement available slots: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("DriveUpCheckIn: opened session id=%d at location=%d", result.ID, result.LocationID)

	return &Response{
		SessionID:         result.ID,
		LocationID:        result.LocationID,
		LicensePlate:      result.LicensePlate,
		EntryTime:         result.EntryTime,
		CheckInEmployeeID: result.CheckInEmployeeID,
	}, nil
}

func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}
	return nil
}
