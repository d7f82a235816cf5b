package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/repository"
	"github.com/snapfest/snapfest-backend/pkg/storage"
)

type EventService struct {
	eventRepo *repository.EventRepository
	blobs     storage.BlobStorage
	logger    *zap.Logger
}

func NewEventService(eventRepo *repository.EventRepository, blobs storage.BlobStorage, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		blobs:     blobs,
		logger:    logger,
	}
}

// Create returns the full event including both codes; only the
// owner-authenticated caller ever sees this.
func (s *EventService) Create(alias string) (*models.Event, error) {
	event, err := s.eventRepo.Create(alias)
	if err != nil {
		return nil, err
	}
	s.logger.Info("event created",
		zap.String("event_id", event.ID),
		zap.String("alias", event.Alias),
	)
	return event, nil
}

func (s *EventService) Get(id string) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

func (s *EventService) List() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

// Delete removes the event record, its metadata log, and its blob
// namespace. The registry delete carries the existence guarantee; a
// failure cleaning the blob namespace afterwards only leaves orphaned
// files, which are tolerated.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}
	if err := s.blobs.DeleteEvent(ctx, id); err != nil {
		s.logger.Warn("event blobs left orphaned after delete",
			zap.String("event_id", id),
			zap.Error(err),
		)
	}
	s.logger.Info("event deleted", zap.String("event_id", id))
	return nil
}
