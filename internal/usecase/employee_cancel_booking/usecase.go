package employee_cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
)

// UseCase use case принудительной отмены брони сотрудником
//
// Сотруднику доступна отмена любой нетерминальной брони своей локации
// без ограничения по сроку. Если бронь уже checked_in, вместе с отменой
// закрывается открытая сессия (без начисления стоимости) и возвращается
// физическое место. Блокировки берутся в порядке бронь -> сессия -> локация.
type UseCase struct {
	bookingRepo  BookingRepository
	sessionRepo  SessionRepository
	locationRepo LocationRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	sessionRepo SessionRepository,
	locationRepo LocationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case принудительной отмены брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EmployeeCancelBooking: booking=%d, location=%d, employee=%d",
		req.BookingID, req.LocationID, req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EmployeeCancelBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

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
			uc.logger.Warn("EmployeeCancelBooking: booking=%d belongs to location=%d, requested location=%d",
				b.ID, b.LocationID, req.LocationID)
			return ErrBookingNotFound
		}

		if b.IsTerminal() {
			uc.logger.Warn("EmployeeCancelBooking: booking=%d is %s, cancellation rejected", b.ID, b.Status)
			return fmt.Errorf("%w: booking is %s", ErrAlreadyTerminal, b.Status)
		}

		wasCheckedIn := b.Status == domain.StatusCheckedIn

		if err := uc.bookingRepo.MarkCancelled(txCtx, b.ID, req.Reason, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotActive) {
				return fmt.Errorf("%w: booking is %s", ErrAlreadyTerminal, b.Status)
			}
			return fmt.Errorf("%w: failed to mark booking cancelled: %w", ErrInternal, err)
		}

		sessionClosed := false

		if wasCheckedIn {
			sess, err := uc.sessionRepo.GetOpenByBookingIDForUpdate(txCtx, b.ID)
			switch {
			case err == nil:
				// Принудительная отмена не тарифицируется
				if err := uc.sessionRepo.Close(txCtx, sess.ID, now, 0, req.EmployeeID); err != nil {
					return fmt.Errorf("%w: failed to close session: %w", ErrInternal, err)
				}
				if _, err := uc.locationRepo.GetByIDForUpdate(txCtx, b.LocationID); err != nil {
					return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
				}
				if err := uc.locationRepo.IncrementAvailable(txCtx, b.LocationID); err != nil {
					if errors.Is(err, locationRepo.ErrLocationNotFound) {
						return fmt.Errorf("%w: location %d of booking %d is missing", ErrInternal, b.LocationID, b.ID)
					}
					return fmt.Errorf("%w: failed to increment available slots: %w", ErrInternal, err)
				}
				sessionClosed = true
			case errors.Is(err, sessionRepo.ErrSessionNotFound):
				// Сессии нет - место возвращать нечего, отмена продолжается
				uc.logger.Warn("EmployeeCancelBooking: booking=%d is checked_in but has no open session", b.ID)
			default:
				return fmt.Errorf("%w: failed to lock session: %w", ErrInternal, err)
			}
		}

		result = &Response{
			BookingID:     b.ID,
			Status:        string(domain.StatusCancelled),
			CancelledAt:   now,
			Reason:        req.Reason,
			SessionClosed: sessionClosed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("EmployeeCancelBooking: booking=%d cancelled by employee=%d, session closed=%t",
		result.BookingID, req.EmployeeID, result.SessionClosed)

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
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason is too long (max %d characters)",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
