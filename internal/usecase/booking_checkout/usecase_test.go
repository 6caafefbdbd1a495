package booking_checkout

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

type stubBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	completedCost float64
	completeCalls int
}

func (s *stubBookingRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingRepo) MarkCompleted(_ context.Context, _ int64, _ time.Time, finalCost float64, _ int64) error {
	s.completeCalls++
	s.completedCost = finalCost
	return nil
}

type stubSessionRepo struct {
	sess       *domain.VehicleSession
	getErr     error
	closeCalls int
}

func (s *stubSessionRepo) GetOpenByBookingIDForUpdate(_ context.Context, _ int64) (*domain.VehicleSession, error) {
	return s.sess, s.getErr
}

func (s *stubSessionRepo) Close(_ context.Context, _ int64, _ time.Time, _ float64, _ int64) error {
	s.closeCalls++
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

type stubRateSource struct{ rate float64 }

func (s stubRateSource) HourlyRate(_ context.Context) (float64, error) {
	return s.rate, nil
}

type stubAlerter struct{ inconsistencies []string }

func (s *stubAlerter) DataInconsistency(operation string) {
	s.inconsistencies = append(s.inconsistencies, operation)
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

func checkedInBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		UserID:          5,
		LocationID:      1,
		StartTime:       at(10, 0),
		EndTime:         at(12, 0),
		Status:          domain.StatusCheckedIn,
		ActualEntryTime: ptr.Ptr(at(10, 5)),
	}
}

func openSession() *domain.VehicleSession {
	return &domain.VehicleSession{
		ID:           201,
		LocationID:   1,
		BookingID:    ptr.Ptr(int64(42)),
		LicensePlate: "A123BC",
		EntryTime:    at(10, 5),
	}
}

func newTestUseCase(bookings *stubBookingRepo, sessions *stubSessionRepo, locations *stubLocationRepo, alerter *stubAlerter, rate float64, exitAt time.Time) *UseCase {
	uc := NewUseCase(bookings, sessions, locations, stubRateSource{rate: rate}, stubTxManager{}, alerter, nopLogger{})
	uc.timeProvider = fixedTime{t: exitAt}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookings := &stubBookingRepo{booking: checkedInBooking()}
	sessions := &stubSessionRepo{sess: openSession()}
	locations := &stubLocationRepo{}
	alerter := &stubAlerter{}
	uc := newTestUseCase(bookings, sessions, locations, alerter, 50, at(12, 5))

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, int64(201), resp.SessionID)
	assert.Equal(t, string(domain.StatusCompleted), resp.BookingStatus)
	assert.InDelta(t, 100.0, resp.FinalCost, 0.001)
	assert.InDelta(t, 100.0, bookings.completedCost, 0.001)
	assert.Equal(t, 1, sessions.closeCalls)
	assert.Equal(t, 1, locations.incrementCalls)
	assert.Empty(t, alerter.inconsistencies)
}

func TestExecute_CostUsesActualStayNotBookingWindow(t *testing.T) {
	// Окно брони 10:00-12:00, фактическое пребывание 10:05-14:05
	bookings := &stubBookingRepo{booking: checkedInBooking()}
	sessions := &stubSessionRepo{sess: openSession()}
	uc := newTestUseCase(bookings, sessions, &stubLocationRepo{}, &stubAlerter{}, 50, at(14, 5))

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, EmployeeID: 7})

	require.NoError(t, err)
	assert.InDelta(t, 200.0, resp.FinalCost, 0.001)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &stubSessionRepo{}, &stubLocationRepo{}, &stubAlerter{}, 50, at(12, 0))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 9, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_WrongLocation(t *testing.T) {
	b := checkedInBooking()
	b.LocationID = 2
	bookings := &stubBookingRepo{booking: b}
	uc := newTestUseCase(bookings, &stubSessionRepo{}, &stubLocationRepo{}, &stubAlerter{}, 50, at(12, 0))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotCheckedIn(t *testing.T) {
	b := checkedInBooking()
	b.Status = domain.StatusConfirmed
	bookings := &stubBookingRepo{booking: b}
	uc := newTestUseCase(bookings, &stubSessionRepo{}, &stubLocationRepo{}, &stubAlerter{}, 50, at(12, 0))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotCheckedIn)
	assert.Contains(t, err.Error(), "confirmed")
}

func TestExecute_MissingSessionReportsInconsistency(t *testing.T) {
	bookings := &stubBookingRepo{booking: checkedInBooking()}
	sessions := &stubSessionRepo{getErr: sessionRepo.ErrSessionNotFound}
	locations := &stubLocationRepo{}
	alerter := &stubAlerter{}
	uc := newTestUseCase(bookings, sessions, locations, alerter, 50, at(12, 0))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, EmployeeID: 7})

	assert.ErrorIs(t, err, ErrInconsistentState)
	assert.Equal(t, []string{"booking_checkout"}, alerter.inconsistencies)
	assert.Equal(t, 0, bookings.completeCalls)
	assert.Equal(t, 0, locations.incrementCalls)
}
