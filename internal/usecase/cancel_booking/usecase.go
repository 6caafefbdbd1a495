package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

// UseCase use case отмены брони пользователем
//
// Пользователь может отменить только собственную бронь в статусе
// confirmed и не позже, чем за notice до начала окна. Физические места
// не трогаются: заезда еще не было, а в пуле бронирования место
// освобождается самим фактом смены статуса (cancelled не учитывается
// при подсчете пересечений).
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	notice       time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notice - минимальный срок до начала окна, при котором отмена разрешена
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notice time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		notice:       notice,
		logger:       logger,
	}
}

// Execute выполняет use case отмены брони пользователем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
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

		if b.UserID != req.UserID {
			uc.logger.Warn("CancelBooking: booking=%d belongs to user=%d, requested by user=%d",
				b.ID, b.UserID, req.UserID)
			return ErrForbidden
		}

		if b.Status != domain.StatusConfirmed {
			uc.logger.Warn("CancelBooking: booking=%d is %s, cancellation rejected", b.ID, b.Status)
			return fmt.Errorf("%w: booking is %s", ErrCannotCancel, b.Status)
		}

		if !b.CanBeCancelledByUser(now, uc.notice) {
			uc.logger.Warn("CancelBooking: booking=%d starts at %s, too late to cancel",
				b.ID, b.StartTime.Format("2006-01-02 15:04"))
			return ErrTooLateToCancel
		}

		if err := uc.bookingRepo.MarkCancelled(txCtx, b.ID, req.Reason, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotActive) {
				return fmt.Errorf("%w: booking is %s", ErrCannotCancel, b.Status)
			}
			return fmt.Errorf("%w: failed to mark booking cancelled: %w", ErrInternal, err)
		}

		result = &Response{
			BookingID:   b.ID,
			Status:      string(domain.StatusCancelled),
			CancelledAt: now,
			Reason:      req.Reason,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking=%d cancelled by user=%d", result.BookingID, req.UserID)

	return result, nil
}

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason is too long (max %d characters)",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
