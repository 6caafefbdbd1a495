package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
)

type stubLocationRepo struct {
	loc *domain.Location
	err error
}

func (s *stubLocationRepo) GetByID(_ context.Context, _ int64) (*domain.Location, error) {
	return s.loc, s.err
}

type stubBookingRepo struct {
	overlapCount int
}

func (s *stubBookingRepo) CountOverlappingActive(_ context.Context, _ int64, _ domain.TimeWindow) (int, error) {
	return s.overlapCount, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestExecute_Bookable(t *testing.T) {
	uc := NewUseCase(
		&stubBookingRepo{overlapCount: 3},
		&stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10}},
		domain.DefaultBookingCapacityShare,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{LocationID: 1, StartTime: at(10, 0), EndTime: at(12, 0)})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.BookingCapacity)
	assert.Equal(t, 3, resp.OverlapCount)
	assert.True(t, resp.IsBookable)
	assert.Equal(t, 4, resp.SlotsAvailableForBooking)
}

func TestExecute_NotBookableAtCapacity(t *testing.T) {
	uc := NewUseCase(
		&stubBookingRepo{overlapCount: 7},
		&stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10}},
		domain.DefaultBookingCapacityShare,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{LocationID: 1, StartTime: at(10, 0), EndTime: at(12, 0)})

	require.NoError(t, err)
	assert.False(t, resp.IsBookable)
	assert.Equal(t, 0, resp.SlotsAvailableForBooking)
}

func TestExecute_OverbookedClampsToZero(t *testing.T) {
	// Пул может оказаться переполнен (например, после смены политики):
	// доступные для брони места не должны уходить в минус
	uc := NewUseCase(
		&stubBookingRepo{overlapCount: 9},
		&stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10}},
		domain.DefaultBookingCapacityShare,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{LocationID: 1, StartTime: at(10, 0), EndTime: at(12, 0)})

	require.NoError(t, err)
	assert.False(t, resp.IsBookable)
	assert.Equal(t, 0, resp.SlotsAvailableForBooking)
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubLocationRepo{loc: &domain.Location{ID: 1}}, 0.7, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, StartTime: at(12, 0), EndTime: at(12, 0)})

	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExecute_LocationNotFound(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubLocationRepo{err: locationRepo.ErrLocationNotFound}, 0.7, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{LocationID: 5, StartTime: at(10, 0), EndTime: at(12, 0)})

	assert.ErrorIs(t, err, ErrLocationNotFound)
}
