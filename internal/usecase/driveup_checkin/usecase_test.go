package driveup_checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
)

type stubLocationRepo struct {
	loc            *domain.Location
	getErr         error
	decrementErr   error
	decrementCalls int
}

func (s *stubLocationRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Location, error) {
	return s.loc, s.getErr
}

func (s *stubLocationRepo) DecrementAvailable(_ context.Context, _ int64) error {
	s.decrementCalls++
	return s.decrementErr
}

type stubSessionRepo struct {
	openSession  *domain.VehicleSession
	openErr      error
	createErr    error
	createdPlate string
}

func (s *stubSessionRepo) GetOpenByPlate(_ context.Context, _ int64, _ string) (*domain.VehicleSession, error) {
	if s.openSession != nil {
		return s.openSession, nil
	}
	if s.openErr != nil {
		return nil, s.openErr
	}
	return nil, sessionRepo.ErrSessionNotFound
}

func (s *stubSessionRepo) Create(_ context.Context, sess *domain.VehicleSession) (*domain.VehicleSession, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.createdPlate = sess.LicensePlate
	sess.ID = 101
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

func newTestUseCase(sessions *stubSessionRepo, locations *stubLocationRepo) *UseCase {
	uc := NewUseCase(sessions, locations, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	sessions := &stubSessionRepo{}
	uc := newTestUseCase(sessions, locations)

	resp, err := uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: "a123bc", EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.SessionID)
	assert.Equal(t, "A123BC", resp.LicensePlate)
	assert.Equal(t, int64(7), resp.CheckInEmployeeID)
	assert.Equal(t, 1, locations.decrementCalls)
}

func TestExecute_PlateNormalization(t *testing.T) {
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	sessions := &stubSessionRepo{}
	uc := newTestUseCase(sessions, locations)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: "  a 123 bc ", EmployeeID: 7})

	require.NoError(t, err)
	assert.Equal(t, "A123BC", sessions.createdPlate)
}

func TestExecute_NoFreeSlots(t *testing.T) {
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 0}}
	uc := newTestUseCase(&stubSessionRepo{}, locations)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrNoFreeSlots)
	assert.Equal(t, 0, locations.decrementCalls)
}

func TestExecute_VehicleAlreadyParked(t *testing.T) {
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	sessions := &stubSessionRepo{openSession: &domain.VehicleSession{ID: 55, LicensePlate: "A123BC"}}
	uc := newTestUseCase(sessions, locations)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrVehicleAlreadyParked)
}

func TestExecute_DuplicateRejectedByIndex(t *testing.T) {
	// Гонка двух заездов по одному номеру: проверка прошла у обоих,
	// но вставку второго отбил частичный уникальный индекс
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	sessions := &stubSessionRepo{createErr: sessionRepo.ErrDuplicateOpenSession}
	uc := newTestUseCase(sessions, locations)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrVehicleAlreadyParked)
}

func TestExecute_LocationNotFound(t *testing.T) {
	locations := &stubLocationRepo{getErr: locationRepo.ErrLocationNotFound}
	uc := newTestUseCase(&stubSessionRepo{}, locations)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 9, LicensePlate: "A123BC", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestExecute_InvalidPlate(t *testing.T) {
	locations := &stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 4}}
	uc := newTestUseCase(&stubSessionRepo{}, locations)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: " x ", EmployeeID: 7})

	assert.ErrorIs(t, err, ErrInvalidPlate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubSessionRepo{}, &stubLocationRepo{})

	_, err := uc.Execute(context.Background(), &Request{LocationID: 0, LicensePlate: "A123BC", EmployeeID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{LocationID: 1, LicensePlate: "A123BC", EmployeeID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
