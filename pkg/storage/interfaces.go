package storage

import (
	"context"
	"io"
	"strings"
)

// BlobStorage stores uploaded file bytes under event-scoped namespaces,
// keyed by the random stored name allocated at Put time. Implementations
// must never let a stored name escape its event namespace.
type BlobStorage interface {
	// Put writes content under a freshly allocated stored name and
	// returns that name. The original name contributes at most a
	// sanitized extension.
	Put(ctx context.Context, eventID, originalName string, content io.Reader) (string, error)

	// Get returns the stored bytes, or models.ErrBlobNotFound.
	Get(ctx context.Context, eventID, storedName string) (io.ReadCloser, error)

	// Delete removes a blob. Deleting an absent key is not an error.
	Delete(ctx context.Context, eventID, storedName string) error

	// DeleteEvent removes the whole namespace of an event.
	DeleteEvent(ctx context.Context, eventID string) error
}

// validSegment rejects anything that could steer a key outside its
// namespace. Stored names and event ids may arrive from URL paths.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\")
}
