package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

const uploadsDirName = "uploads"

// FSStorage keeps blobs on the local filesystem under
// <baseDir>/<eventID>/uploads/<storedName>. This is the default driver
// and shares the data directory with the event registry.
type FSStorage struct {
	baseDir string
}

func NewFSStorage(baseDir string) (*FSStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: base directory is required", models.ErrStorage)
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create base directory: %v", models.ErrStorage, err)
	}
	return &FSStorage{baseDir: baseDir}, nil
}

func (s *FSStorage) Put(ctx context.Context, eventID, originalName string, content io.Reader) (string, error) {
	if !validSegment(eventID) {
		return "", models.ErrBlobNotFound
	}
	storedName := utils.NewStoredName(originalName)

	dir := filepath.Join(s.baseDir, eventID, uploadsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create uploads directory: %v", models.ErrStorage, err)
	}

	file, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create blob file: %v", models.ErrStorage, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("%w: failed to write blob file: %v", models.ErrStorage, err)
	}
	return storedName, nil
}

func (s *FSStorage) Get(ctx context.Context, eventID, storedName string) (io.ReadCloser, error) {
	path, err := s.blobPath(eventID, storedName)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, models.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open blob file: %v", models.ErrStorage, err)
	}
	return file, nil
}

func (s *FSStorage) Delete(ctx context.Context, eventID, storedName string) error {
	path, err := s.blobPath(eventID, storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to delete blob file: %v", models.ErrStorage, err)
	}
	return nil
}

func (s *FSStorage) DeleteEvent(ctx context.Context, eventID string) error {
	if !validSegment(eventID) {
		return models.ErrBlobNotFound
	}
	dir := filepath.Join(s.baseDir, eventID, uploadsDirName)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: failed to remove uploads directory: %v", models.ErrStorage, err)
	}
	return nil
}

// blobPath confines the pair to the event's uploads directory. A stored
// name with separators or traversal sequences resolves to not-found
// rather than to a path outside the namespace.
func (s *FSStorage) blobPath(eventID, storedName string) (string, error) {
	if !validSegment(eventID) || !validSegment(storedName) {
		return "", models.ErrBlobNotFound
	}
	dir := filepath.Join(s.baseDir, eventID, uploadsDirName)
	path := filepath.Join(dir, storedName)
	if filepath.Dir(path) != dir {
		return "", models.ErrBlobNotFound
	}
	return path, nil
}
