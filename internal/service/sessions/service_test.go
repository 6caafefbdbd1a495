package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type stubSessionRepo struct {
	sessions []*domain.VehicleSession
}

func (s *stubSessionRepo) ListOpenByLocation(_ context.Context, _ int64) ([]*domain.VehicleSession, error) {
	return s.sessions, nil
}

type stubLocationRepo struct {
	loc *domain.Location
	err error
}

func (s *stubLocationRepo) GetByID(_ context.Context, _ int64) (*domain.Location, error) {
	return s.loc, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListOpenByLocation_Success(t *testing.T) {
	entry := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	svc := NewService(
		&stubSessionRepo{sessions: []*domain.VehicleSession{
			{ID: 1, LocationID: 1, LicensePlate: "A123BC", EntryTime: entry},
			{ID: 2, LocationID: 1, BookingID: ptr.Ptr(int64(42)), LicensePlate: "B777XX", EntryTime: entry},
		}},
		&stubLocationRepo{loc: &domain.Location{ID: 1, TotalSlots: 10, AvailableSlots: 8}},
		nopLogger{},
	)

	resp, err := svc.ListOpenByLocation(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 10, resp.TotalSlots)
	assert.Equal(t, 8, resp.AvailableSlots)
	assert.True(t, resp.Sessions[0].IsDriveUp)
	assert.False(t, resp.Sessions[1].IsDriveUp)
}

func TestListOpenByLocation_LocationNotFound(t *testing.T) {
	svc := NewService(&stubSessionRepo{}, &stubLocationRepo{err: locationRepo.ErrLocationNotFound}, nopLogger{})

	_, err := svc.ListOpenByLocation(context.Background(), 9)

	assert.ErrorIs(t, err, ErrLocationNotFound)
}
