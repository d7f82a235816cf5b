package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/repository"
	"github.com/snapfest/snapfest-backend/pkg/storage"
)

// GalleryService composes the blob store and the metadata log into the
// upload, listing, download and delete flows of one event gallery.
type GalleryService struct {
	eventRepo    *repository.EventRepository
	metadataRepo *repository.MetadataRepository
	blobs        storage.BlobStorage
	access       *AccessService
	logger       *zap.Logger
}

func NewGalleryService(
	eventRepo *repository.EventRepository,
	metadataRepo *repository.MetadataRepository,
	blobs storage.BlobStorage,
	access *AccessService,
	logger *zap.Logger,
) *GalleryService {
	return &GalleryService{
		eventRepo:    eventRepo,
		metadataRepo: metadataRepo,
		blobs:        blobs,
		access:       access,
		logger:       logger,
	}
}

// Upload stores the bytes first and the metadata record second. When the
// append fails the blob stays behind as an orphan; that inconsistency is
// tolerated, the reverse (metadata without a blob) never happens.
func (s *GalleryService) Upload(ctx context.Context, eventID, uploader, originalName string, content io.Reader) (*models.UploadRecord, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}

	record := models.UploadRecord{
		OriginalName: originalName,
		Uploader:     normalizeUploader(uploader),
		UploadedAt:   time.Now().UTC(),
	}

	storedName, err := s.blobs.Put(ctx, eventID, originalName, content)
	if err != nil {
		return nil, err
	}
	record.FileName = storedName

	if err := s.metadataRepo.Append(eventID, record); err != nil {
		s.logger.Warn("blob left orphaned after failed metadata append",
			zap.String("event_id", eventID),
			zap.String("filename", storedName),
			zap.Error(err),
		)
		return nil, err
	}
	return &record, nil
}

// ListGallery returns the event's records in display order, each with
// the download reference the boundary layer serves blobs under.
func (s *GalleryService) ListGallery(ctx context.Context, eventID string) ([]models.GalleryItem, error) {
	records, err := s.metadataRepo.List(eventID)
	if err != nil {
		return nil, err
	}

	items := make([]models.GalleryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, models.GalleryItem{
			FileName:     rec.FileName,
			OriginalName: rec.OriginalName,
			Uploader:     rec.Uploader,
			UploadedAt:   rec.UploadedAt,
			URL:          fmt.Sprintf("/api/events/%s/files/%s", eventID, rec.FileName),
		})
	}
	return items, nil
}

func (s *GalleryService) FetchBlob(ctx context.Context, eventID, storedName string) (io.ReadCloser, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.blobs.Get(ctx, eventID, storedName)
}

// DeleteUpload re-validates the admin code, removes the blob best-effort
// and lets the metadata log decide whether the entry existed.
func (s *GalleryService) DeleteUpload(ctx context.Context, eventID, storedName, adminCode string) error {
	if err := s.access.AuthorizeAdminAction(eventID, adminCode); err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, eventID, storedName); err != nil && !errors.Is(err, models.ErrBlobNotFound) {
		s.logger.Warn("blob delete failed, removing metadata anyway",
			zap.String("event_id", eventID),
			zap.String("filename", storedName),
			zap.Error(err),
		)
	}
	return s.metadataRepo.Remove(eventID, storedName)
}

func normalizeUploader(uploader string) string {
	uploader = strings.TrimSpace(uploader)
	if uploader == "" {
		return models.AnonymousUploader
	}
	if runes := []rune(uploader); len(runes) > models.MaxUploaderLen {
		return string(runes[:models.MaxUploaderLen])
	}
	return uploader
}
