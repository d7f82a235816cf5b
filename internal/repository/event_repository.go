package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

// EventRepository persists event records on the filesystem, one
// directory per event: <dataDir>/<id>/config.json holds the record,
// metadata.json the upload log, uploads/ the blobs. The presence of
// config.json is the source of truth for an event's existence.
type EventRepository struct {
	dataDir string
	locks   *EventLocks
}

func NewEventRepository(dataDir string, locks *EventLocks) (*EventRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create data directory: %v", models.ErrStorage, err)
	}
	return &EventRepository{
		dataDir: dataDir,
		locks:   locks,
	}, nil
}

func (r *EventRepository) Create(alias string) (*models.Event, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		alias = "Unnamed Event"
	}

	guestCode, err := utils.NewGuestCode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	event := &models.Event{
		ID:        utils.NewEventID(),
		Alias:     alias,
		GuestCode: guestCode,
		AdminCode: utils.NewAdminCode(),
		CreatedAt: time.Now().UTC(),
	}

	dir := filepath.Join(r.dataDir, event.ID)
	if err := os.MkdirAll(filepath.Join(dir, uploadsDirName), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create event directory: %v", models.ErrStorage, err)
	}
	if err := writeJSONAtomic(filepath.Join(dir, metadataFileName), []models.UploadRecord{}); err != nil {
		return nil, err
	}
	// Config goes last: the event only starts existing once its record
	// is on disk.
	if err := writeJSONAtomic(filepath.Join(dir, configFileName), event); err != nil {
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	if !validEventID(id) {
		return nil, models.ErrEventNotFound
	}
	return r.readConfig(id)
}

// GetAll returns every event, oldest first. Directories without a
// readable config.json are skipped: they are either half-deleted events
// or foreign files, not ghosts worth failing the listing over.
func (r *EventRepository) GetAll() ([]models.Event, error) {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read data directory: %v", models.ErrStorage, err)
	}

	events := make([]models.Event, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		event, err := r.readConfig(entry.Name())
		if err != nil {
			continue
		}
		events = append(events, *event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
	return events, nil
}

// Delete removes the event record and everything under its directory.
// It holds the event's lock so a concurrent upload either completes
// before the removal or fails afterwards with not-found; the config file
// goes first so a partial failure can only leave orphaned files, never a
// resolvable ghost event.
func (r *EventRepository) Delete(id string) error {
	if !validEventID(id) {
		return models.ErrEventNotFound
	}

	lock := r.locks.Lock(id)
	defer lock.Unlock()

	dir := filepath.Join(r.dataDir, id)
	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return models.ErrEventNotFound
	}

	if err := os.Remove(configPath); err != nil {
		return fmt.Errorf("%w: failed to remove event record: %v", models.ErrStorage, err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: failed to remove event directory: %v", models.ErrStorage, err)
	}
	return nil
}

func (r *EventRepository) readConfig(id string) (*models.Event, error) {
	data, err := os.ReadFile(filepath.Join(r.dataDir, id, configFileName))
	if os.IsNotExist(err) {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read event record: %v", models.ErrStorage, err)
	}

	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: corrupt event record for %s: %v", models.ErrStorage, id, err)
	}
	return &event, nil
}
