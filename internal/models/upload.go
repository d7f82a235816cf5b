package models

import (
	"time"
)

// MaxUploaderLen is the longest uploader name kept in metadata; longer
// names are truncated, empty ones become AnonymousUploader.
const (
	MaxUploaderLen    = 64
	AnonymousUploader = "Anonymous"
)

// UploadRecord is one entry of an event's metadata log. FileName is the
// random on-disk key allocated by the blob store; OriginalName is the
// client-supplied name kept for display only and never used as a path.
type UploadRecord struct {
	FileName     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Uploader     string    `json:"uploader"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// GalleryItem is the public projection of an UploadRecord returned by
// the gallery listing.
type GalleryItem struct {
	FileName     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Uploader     string    `json:"uploader"`
	UploadedAt   time.Time `json:"uploaded_at"`
	URL          string    `json:"url"`
}
