package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

// MemoryStorage is an in-memory BlobStorage used in tests and for
// throwaway deployments.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		blobs: make(map[string][]byte),
	}
}

func (s *MemoryStorage) Put(ctx context.Context, eventID, originalName string, content io.Reader) (string, error) {
	if !validSegment(eventID) {
		return "", models.ErrBlobNotFound
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read content: %v", models.ErrStorage, err)
	}
	storedName := utils.NewStoredName(originalName)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[blobKey(eventID, storedName)] = data
	return storedName, nil
}

func (s *MemoryStorage) Get(ctx context.Context, eventID, storedName string) (io.ReadCloser, error) {
	if !validSegment(eventID) || !validSegment(storedName) {
		return nil, models.ErrBlobNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[blobKey(eventID, storedName)]
	if !ok {
		return nil, models.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *MemoryStorage) Delete(ctx context.Context, eventID, storedName string) error {
	if !validSegment(eventID) || !validSegment(storedName) {
		return models.ErrBlobNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, blobKey(eventID, storedName))
	return nil
}

func (s *MemoryStorage) DeleteEvent(ctx context.Context, eventID string) error {
	if !validSegment(eventID) {
		return models.ErrBlobNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := eventID + "/"
	for key := range s.blobs {
		if strings.HasPrefix(key, prefix) {
			delete(s.blobs, key)
		}
	}
	return nil
}

func blobKey(eventID, storedName string) string {
	return eventID + "/" + storedName
}
