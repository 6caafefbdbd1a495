package driveup_checkout

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
)

// UseCase use case выезда по идентификатору сессии
//
// Обслуживает выезд любого автомобиля: и чистый drive-up, и заезд по
// брони (у сессии проставлен BookingID). Закрытие сессии, расчет
// стоимости и возврат физического места атомарны; если сессия привязана
// к брони, бронь в той же транзакции переводится в completed.
type UseCase struct {
	sessionRepo  SessionRepository
	locationRepo LocationRepository
	bookingRepo  BookingRepository
	rateSource   RateSource
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	locationRepo LocationRepository,
	bookingRepo BookingRepository,
	rateSource RateSource,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		bookingRepo:  bookingRepo,
		rateSource:   rateSource,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case выезда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DriveUpCheckOut: session=%d, location=%d, employee=%d",
		req.SessionID, req.LocationID, req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DriveUpCheckOut: validation failed: %v", err)
		return nil, err
	}

	exitTime := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		sess, err := uc.sessionRepo.GetByIDForUpdate(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: failed to lock session: %w", ErrInternal, err)
		}

		// Сессия с чужой локации для этого поста выезда не существует
		if sess.LocationID != req.LocationID {
			uc.logger.Warn("DriveUpCheckOut: session=%d belongs to location=%d, requested location=%d",
				sess.ID, sess.LocationID, req.LocationID)
			return ErrSessionNotFound
		}

		if !sess.IsOpen() {
			uc.logger.Warn("DriveUpCheckOut: session=%d already closed", sess.ID)
			return ErrSessionAlreadyClosed
		}

		if _, err := uc.locationRepo.GetByIDForUpdate(txCtx, sess.LocationID); err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				return fmt.Errorf("%w: location %d of open session %d is missing: %w",
					ErrInternal, sess.LocationID, sess.ID, err)
			}
			return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
		}

		rate, err := uc.rateSource.HourlyRate(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to get hourly rate: %w", ErrInternal, err)
		}

		cost := pricing.Cost(sess.EntryTime, exitTime, rate)

		if err := uc.sessionRepo.Close(txCtx, sess.ID, exitTime, cost, req.EmployeeID); err != nil {
			if errors.Is(err, sessionRepo.ErrSessionAlreadyClosed) {
				return ErrSessionAlreadyClosed
			}
			return fmt.Errorf("%w: failed to close session: %w", ErrInternal, err)
		}

		if sess.BookingID != nil {
			err := uc.bookingRepo.MarkCompleted(txCtx, *sess.BookingID, exitTime, cost, req.EmployeeID)
			if errors.Is(err, bookingRepo.ErrBookingNotCheckedIn) {
				// Бронь уже не в checked_in - выезд сессии важнее,
				// расхождение фиксируем в логах и не роняем транзакцию
				uc.logger.Warn("DriveUpCheckOut: booking=%d is not checked_in while closing session=%d",
					*sess.BookingID, sess.ID)
			} else if err != nil {
				return fmt.Errorf("%w: failed to complete booking: %w", ErrInternal, err)
			}
		}

		if err := uc.locationRepo.IncrementAvailable(txCtx, sess.LocationID); err != nil {
			return fmt.Errorf("%w: failed to increment available slots: %w", ErrInternal, err)
		}

		result = &Response{
			SessionID:    sess.ID,
			LocationID:   sess.LocationID,
			BookingID:    sess.BookingID,
			LicensePlate: sess.LicensePlate,
			EntryTime:    sess.EntryTime,
			ExitTime:     exitTime,
			Cost:         cost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("DriveUpCheckOut: closed session id=%d, cost=%.2f", result.SessionID, result.Cost)

	return result, nil
}

func validateRequest(req *Request) error {
	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}
	return nil
}
