package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/snapfest/snapfest-backend/internal/models"
)

// MetadataRepository persists each event's upload log as a single JSON
// array in metadata.json. Every mutation is a whole-log
// read-modify-write, so Append and Remove serialize on the event's lock;
// List reads without a lock because the atomic rename in writeJSONAtomic
// guarantees it sees a complete log.
type MetadataRepository struct {
	dataDir string
	locks   *EventLocks
}

func NewMetadataRepository(dataDir string, locks *EventLocks) *MetadataRepository {
	return &MetadataRepository{
		dataDir: dataDir,
		locks:   locks,
	}
}

// Append adds a record at the end of the event's log. The write is
// durable before returning, so a gallery read straight after an upload
// sees the new entry.
func (r *MetadataRepository) Append(eventID string, record models.UploadRecord) error {
	if !validEventID(eventID) {
		return models.ErrEventNotFound
	}

	lock := r.locks.Lock(eventID)
	defer lock.Unlock()

	records, err := r.load(eventID)
	if err != nil {
		return err
	}
	records = append(records, record)
	return writeJSONAtomic(r.metadataPath(eventID), records)
}

// List returns the event's records in insertion order.
func (r *MetadataRepository) List(eventID string) ([]models.UploadRecord, error) {
	if !validEventID(eventID) {
		return nil, models.ErrEventNotFound
	}
	return r.load(eventID)
}

// Remove drops the record matching storedName. The stored name space is
// collision-free, so at most one record can match.
func (r *MetadataRepository) Remove(eventID, storedName string) error {
	if !validEventID(eventID) {
		return models.ErrEventNotFound
	}

	lock := r.locks.Lock(eventID)
	defer lock.Unlock()

	records, err := r.load(eventID)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if !found && rec.FileName == storedName {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return models.ErrUploadNotFound
	}
	return writeJSONAtomic(r.metadataPath(eventID), kept)
}

func (r *MetadataRepository) load(eventID string) ([]models.UploadRecord, error) {
	data, err := os.ReadFile(r.metadataPath(eventID))
	if os.IsNotExist(err) {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read metadata log: %v", models.ErrStorage, err)
	}

	var records []models.UploadRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: corrupt metadata log for %s: %v", models.ErrStorage, eventID, err)
	}
	return records, nil
}

func (r *MetadataRepository) metadataPath(eventID string) string {
	return filepath.Join(r.dataDir, eventID, metadataFileName)
}
