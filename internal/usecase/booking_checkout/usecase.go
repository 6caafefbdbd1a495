package booking_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
)

// UseCase use case выезда по брони
//
// Стоимость считается по фактическому времени пребывания (сессия),
// а не по окну брони. Закрытие сессии, перевод брони в completed и
// возврат физического места атомарны; блокировки берутся в порядке
// бронь -> локация -> сессия.
//
// Бронь checked_in без открытой сессии - нарушение инварианта данных:
// запрос завершается ошибкой, расхождение уходит в метрики для алерта.
type UseCase struct {
	bookingRepo  BookingRepository
	sessionRepo  SessionRepository
	locationRepo LocationRepository
	rateSource   RateSource
	txManager    TransactionManager
	timeProvider TimeProvider
	alerter      Alerter
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	sessionRepo SessionRepository,
	locationRepo LocationRepository,
	rateSource RateSource,
	txManager TransactionManager,
	alerter Alerter,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		rateSource:   rateSource,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		alerter:      alerter,
		logger:       logger,
	}
}

// Execute выполняет use case выезда по брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookingCheckOut: booking=%d, location=%d, employee=%d",
		req.BookingID, req.LocationID, req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookingCheckOut: validation failed: %v", err)
		return nil, err
	}

	exitTime := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to lock booking: %w", ErrInternal, err)
		}

		if b.LocationID != req.LocationID {
			uc.logger.Warn("BookingCheckOut: booking=%d belongs to location=%d, requested location=%d",
				b.ID, b.LocationID, req.LocationID)
			return ErrBookingNotFound
		}

		if !b.CanComplete() {
			uc.logger.Warn("BookingCheckOut: booking=%d is %s, check-out rejected", b.ID, b.Status)
			return fmt.Errorf("%w: booking is %s", ErrBookingNotCheckedIn, b.Status)
		}

		sess, err := uc.sessionRepo.GetOpenByBookingIDForUpdate(txCtx, b.ID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				uc.logger.Error("BookingCheckOut: booking=%d is checked_in but has no open session", b.ID)
				uc.alerter.DataInconsistency("booking_checkout")
				return ErrInconsistentState
			}
			return fmt.Errorf("%w: failed to lock session: %w", ErrInternal, err)
		}

		if _, err := uc.locationRepo.GetByIDForUpdate(txCtx, b.LocationID); err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				return fmt.Errorf("%w: location %d of booking %d is missing: %w",
					ErrInternal, b.LocationID, b.ID, err)
			}
			return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
		}

		rate, err := uc.rateSource.HourlyRate(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to get hourly rate: %w", ErrInternal, err)
		}

		cost := pricing.Cost(sess.EntryTime, exitTime, rate)

		if err := uc.sessionRepo.Close(txCtx, sess.ID, exitTime, cost, req.EmployeeID); err != nil {
			return fmt.Errorf("%w: failed to close session: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.MarkCompleted(txCtx, b.ID, exitTime, cost, req.EmployeeID); err != nil {
			return fmt.Errorf("%w: failed to mark booking completed: %w", ErrInternal, err)
		}

		if err := uc.locationRepo.IncrementAvailable(txCtx, b.LocationID); err != nil {
			return fmt.Errorf("%w: failed to increment available slots: %w", ErrInternal, err)
		}

		result = &Response{
			BookingID:     b.ID,
			SessionID:     sess.ID,
			LocationID:    b.LocationID,
			LicensePlate:  sess.LicensePlate,
			EntryTime:     sess.EntryTime,
			ExitTime:      exitTime,
			FinalCost:     cost,
			BookingStatus: string(domain.StatusCompleted),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookingCheckOut: booking=%d completed, cost=%.2f", result.BookingID, result.FinalCost)

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
