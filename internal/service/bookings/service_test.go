package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type stubBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	getErr   error
	status   *domain.BookingStatus
}

func (s *stubBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingRepo) GetByUserID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	s.status = status
	return s.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:         42,
		UserID:     5,
		LocationID: 1,
		StartTime:  time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(&stubBookingRepo{booking: sampleBooking()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc := NewService(&stubBookingRepo{booking: sampleBooking()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 999)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 9, 5)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 5,
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.status)
	assert.Equal(t, domain.StatusConfirmed, *repo.status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 5,
		Status: ptr.Ptr("parked"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
