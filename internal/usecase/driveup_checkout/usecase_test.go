package driveup_checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type stubSessionRepo struct {
	sess       *domain.VehicleSession
	getErr     error
	closeErr   error
	closedCost float64
}

func (s *stubSessionRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.VehicleSession, error) {
	return s.sess, s.getErr
}

func (s *stubSessionRepo) Close(_ context.Context, _ int64, _ time.Time, cost float64, _ int64) error {
	if s.closeErr != nil {
		return s.closeErr
	}
	s.closedCost = cost
	return nil
}

type stubLocationRepo struct {
	incrementCalls int
}

func (s *stubLocationRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Location, error) {
	return &domain.Location{ID: id, TotalSlots: 10, AvailableSlots: 3}, nil
}

func (s *stubLocationRepo) IncrementAvailable(_ context.Context, _ int64) error {
	s.incrementCalls++
	return nil
}

type stubBookingRepo struct {
	completeErr   error
	completeCalls int
	completedCost float64
}

func (s *stubBookingRepo) MarkCompleted(_ context.Context, _ int64, _ time.Time, finalCost float64, _ int64) error {
	s.completeCalls++
	if s.completeErr != nil {
		return s.completeErr
	}
	s.completedCost = finalCost
	return nil
}

type stubRateSource struct{ rate float64 }

func (s stubRateSource) HourlyRate(_ context.Context) (float64, error) {
	return s.rate, nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func newTestUseCase(sessions *stubSessionRepo, locations *stubLocationRepo, bookings *stubBookingRepo, rate float64, exitAt time.Time) *UseCase {
	uc := NewUseCase(sessions, locations, bookings, stubRateSource{rate: rate}, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: exitAt}
	return uc
}

func TestExecute_DriveUpSuccess(t *testing.T) {
	sessions := &stubSessionRepo{sess: &domain.VehicleSession{
		ID: 101, LocationID: 1, LicensePlate: "A123BC", EntryTime: at(9, 0),
	}}
	locations := &stubLocationRepo{}
	bookings := &stubBookingRepo{}
	uc := newTestUseCase(sessions, locations, bookings, 50, at(11, 30))

	resp, err := uc.Execute(context.Background(), &Request{SessionID: 101, LocationID: 1, EmployeeID: 7})

	require.NoError(t, err)
	assert.InDelta(t, 125.0, resp.Cost, 0.001)
	assert.Equal(t, 1, locations.incrementCalls)
	assert.Equal(t, 0, bookings.completeCalls)
	assert.Nil(t, resp.BookingID)
}

func TestExecute_BookedSessionCompletesBooking(t *testing.T) {
	sessions := &stubSessionRepo{sess: &domain.VehicleSession{
		ID: 101, LocationID: 1, BookingID: ptr.Ptr(int64(42)), LicensePlate: "A123BC", EntryTime: at(9, 0),
	}}
	locations := &stubLocationRepo{}
	bookings := &stubBookingRepo{}
	uc := newTestUseCase(sessions, locations, bookings, 50, at(10, 0))

	resp, err := uc.Execute(context.Background(), &Request{SessionID: 101, LocationID: 1, EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, 1, bookings.completeCalls)
	assert.InDelta(t, 50.0, bookings.completedCost, 0.001)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(42), *resp.BookingID)
}

func TestExecute_BookingAlreadyCompletedIsTolerated(t *testing.T) {
	sessions := &stubSessionRepo{sess: &domain.VehicleSession{
		ID: 101, LocationID: 1, BookingID: ptr.Ptr(int64(42)), LicensePlate: "A123BC", EntryTime: at(9, 0),
	}}
	locations := &stubLocationRepo{}
	bookings := &stubBookingRepo{completeErr: bookingRepo.ErrBookingNotCheckedIn}
	uc := newTestUseCase(sessions, locations, bookings, 50, at(10, 0))

	_, err := uc.Execute(context.Background(), &Request{SessionID: 101, LocationID: 1, EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, 1, locations.incrementCalls)
}

func TestExecute_MinBillableDuration(t *testing.T) {
	sessions := &stubSessionRepo{sess: &domain.VehicleSession{
		ID: 101, LocationID: 1, LicensePlate: "A123BC", EntryTime: at(9, 0),
	}}
	uc := newTestUseCase(sessions, &stubLocationRepo{}, &stubBookingRepo{}, 50, at(9, 5))

	resp, err := uc.Execute(context.Background(), &Request{SessionID: 101, LocationID: 1, EmployeeID: 7})

	require.NoError(t, err)
	assert.InDelta(t, 12.5, resp.Cost, 0.001)
}

func TestExecute_SessionNotFound(t *testing.T) {
	sessions := &stubSessionRepo{getErr: sessionRepo.ErrSessionNotFound}
	uc := newTestUseCase(sessions, &stubLocationRepo{}, &stubBookingRepo{}, 50, at(10, 0))

	_, err := uc.Execute(context.Background(), &Request{SessionID: 999, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_WrongLocation(t *testing.T) {
	sessions := &stubSessionRepo{sess: &domain.VehicleSession{
		ID: 101, LocationID: 2, LicensePlate: "A123BC", EntryTime: at(9, 0),
	}}
	uc := newTestUseCase(sessions, &stubLocationRepo{}, &stubBookingRepo{}, 50, at(10, 0))

	_, err := uc.Execute(context.Background(), &Request{SessionID: 101, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_AlreadyClosed(t *testing.T) {
	sessions := &stubSessionRepo{sess: &domain.VehicleSession{
		ID: 101, LocationID: 1, LicensePlate: "A123BC", EntryTime: at(9, 0), ExitTime: ptr.Ptr(at(10, 0)),
	}}
	locations := &stubLocationRepo{}
	uc := newTestUseCase(sessions, locations, &stubBookingRepo{}, 50, at(11, 0))

	_, err := uc.Execute(context.Background(), &Request{SessionID: 101, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrSessionAlreadyClosed)
	assert.Equal(t, 0, locations.incrementCalls)
}
