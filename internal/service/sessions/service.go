package sessions

import (
	"context"
	"errors"
	"fmt"

	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
)

// Service сервис чтения открытых сессий (текущая загрузка локации)
type Service struct {
	sessionRepo  SessionRepository
	locationRepo LocationRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, locationRepo LocationRepository, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// ListOpenByLocation возвращает открытые сессии локации вместе
// с текущим состоянием счетчика физических мест
func (s *Service) ListOpenByLocation(ctx context.Context, locationID int64) (*models.SessionListResponse, error) {
	s.logger.Info("ListOpenByLocation: fetching open sessions for location=%d", locationID)

	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("ListOpenByLocation: location=%d not found", locationID)
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("%w: ListOpenByLocation - repository error: %v", ErrInternal, err)
	}

	open, err := s.sessionRepo.ListOpenByLocation(ctx, loc.ID)
	if err != nil {
		s.logger.Error("ListOpenByLocation: repository error for location=%d: %v", loc.ID, err)
		return nil, fmt.Errorf("%w: ListOpenByLocation - repository error: %v", ErrInternal, err)
	}

	sessions := make([]*models.SessionResponse, len(open))
	for i, sess := range open {
		sessions[i] = models.FromDomainSession(sess)
	}

	s.logger.Info("ListOpenByLocation: %d open sessions at location=%d", len(sessions), loc.ID)

	return &models.SessionListResponse{
		LocationID:     loc.ID,
		TotalSlots:     loc.TotalSlots,
		AvailableSlots: loc.AvailableSlots,
		Sessions:       sessions,
		Total:          len(sessions),
	}, nil
}
