package booking_checkin

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
	booking      *domain.Booking
	getErr       error
	checkedPlate string
}

func (s *stubBookingRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingRepo) MarkCheckedIn(_ context.Context, _ int64, plate string, _ int64, _ time.Time) error {
	s.checkedPlate = plate
	return nil
}

type stubLocationRepo struct {
	loc            *domain.Location
	decrementCalls int
}

func (s *stubLocationRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Location, error) {
	return s.loc, nil
}

func (s *stubLocationRepo) DecrementAvailable(_ context.Context, _ int64) error {
	s.decrementCalls++
	return nil
}

type stubSessionRepo struct {
	openSession *domain.VehicleSession
	createErr   error
	bookingID   *int64
}

func (s *stubSessionRepo) GetOpenByPlate(_ context.Context, _ int64, _ string) (*domain.VehicleSession, error) {
	if s.openSession != nil {
		return s.openSession, nil
	}
	return nil, sessionRepo.ErrSessionNotFound
}

func (s *stubSessionRepo) Create(_ context.Context, sess *domain.VehicleSession) (*domain.VehicleSession, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.bookingID = sess.BookingID
	sess.ID = 201
	return sess, nil
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

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         42,
		UserID:     5,
		LocationID: 1,
		StartTime:  at(10, 0),
		EndTime:    at(12, 0),
		Status:     domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings *stubBookingRepo, locations *stubLocationRepo, sessions *stubSessionRepo) *UseCase {
	uc := NewUseCase(bookings, locations, sessions, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: at(10, 5)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	sessions := &stubSessionRepo{}
	uc := newTestUseCase(bookings, locations, sessions)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "a123bc", EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, int64(201), resp.SessionID)
	assert.Equal(t, "A123BC", resp.LicensePlate)
	assert.Equal(t, string(domain.StatusCheckedIn), resp.BookingStatus)
	assert.Equal(t, "A123BC", bookings.checkedPlate)
	assert.Equal(t, 1, locations.decrementCalls)
	require.NotNil(t, sessions.bookingID)
	assert.Equal(t, int64(42), *sessions.bookingID)
}

func TestExecute_DifferentPlateThanBookedIsAllowed(t *testing.T) {
	b := confirmedBooking()
	b.LicensePlateBooked = ptr.Ptr("B777XX")
	bookings := &stubBookingRepo{booking: b}
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	uc := newTestUseCase(bookings, locations, &stubSessionRepo{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, "A123BC", resp.LicensePlate)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &stubLocationRepo{}, &stubSessionRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 9, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_WrongLocation(t *testing.T) {
	b := confirmedBooking()
	b.LocationID = 2
	bookings := &stubBookingRepo{booking: b}
	uc := newTestUseCase(bookings, &stubLocationRepo{}, &stubSessionRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyCheckedIn(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCheckedIn
	bookings := &stubBookingRepo{booking: b}
	uc := newTestUseCase(bookings, &stubLocationRepo{}, &stubSessionRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotConfirmed)
	assert.Contains(t, err.Error(), "checked_in")
}

func TestExecute_CancelledBooking(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCancelled
	bookings := &stubBookingRepo{booking: b}
	uc := newTestUseCase(bookings, &stubLocationRepo{}, &stubSessionRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrBookingNotConfirmed)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestExecute_NoFreeSlots(t *testing.T) {
	// Бронь допускает в пул бронирования, но физическое место не гарантирует
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 0}}
	uc := newTestUseCase(bookings, locations, &stubSessionRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrNoFreeSlots)
	assert.Equal(t, 0, locations.decrementCalls)
}

func TestExecute_VehicleAlreadyParked(t *testing.T) {
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	sessions := &stubSessionRepo{openSession: &domain.VehicleSession{ID: 55}}
	uc := newTestUseCase(bookings, locations, sessions)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrVehicleAlreadyParked)
}
