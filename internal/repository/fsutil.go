package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/snapfest/snapfest-backend/internal/models"
)

const (
	configFileName   = "config.json"
	metadataFileName = "metadata.json"
	uploadsDirName   = "uploads"
)

// validEventID rejects ids that could resolve outside the data
// directory. Event ids arrive from URL path segments.
func validEventID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, "/\\")
}

// writeJSONAtomic marshals v and swaps it into place with a rename, so
// concurrent readers see either the old log or the new one, never a
// partial write.
func writeJSONAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %v", models.ErrStorage, filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", models.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write temp file: %v", models.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp file: %v", models.ErrStorage, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %v", models.ErrStorage, filepath.Base(path), err)
	}
	return nil
}
