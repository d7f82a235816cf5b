package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/repository"
)

func newEventRepo(t *testing.T) (*repository.EventRepository, string) {
	t.Helper()
	dataDir := t.TempDir()
	repo, err := repository.NewEventRepository(dataDir, repository.NewEventLocks())
	require.NoError(t, err)
	return repo, dataDir
}

func TestEventRepositoryCreate(t *testing.T) {
	repo, dataDir := newEventRepo(t)

	event, err := repo.Create("Birthday Party")
	require.NoError(t, err)

	assert.Equal(t, "Birthday Party", event.Alias)
	assert.Regexp(t, `^event_`, event.ID)
	assert.Regexp(t, `^[0-9]{6}$`, event.GuestCode)
	assert.Regexp(t, `^adm-`, event.AdminCode)
	assert.False(t, event.CreatedAt.IsZero())

	// Record, empty metadata log and uploads namespace exist on disk.
	assert.FileExists(t, filepath.Join(dataDir, event.ID, "config.json"))
	assert.FileExists(t, filepath.Join(dataDir, event.ID, "metadata.json"))
	assert.DirExists(t, filepath.Join(dataDir, event.ID, "uploads"))
}

func TestEventRepositoryCreateBlankAlias(t *testing.T) {
	repo, _ := newEventRepo(t)

	event, err := repo.Create("   ")
	require.NoError(t, err)
	assert.Equal(t, "Unnamed Event", event.Alias)
}

func TestEventRepositoryGetByID(t *testing.T) {
	repo, _ := newEventRepo(t)

	created, err := repo.Create("Wedding")
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.GuestCode, got.GuestCode)
	assert.Equal(t, created.AdminCode, got.AdminCode)

	_, err = repo.GetByID("event_missing")
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestEventRepositoryGetByIDRejectsTraversal(t *testing.T) {
	repo, _ := newEventRepo(t)

	for _, id := range []string{"../outside", "..", "", "a/b", `a\b`} {
		_, err := repo.GetByID(id)
		assert.ErrorIs(t, err, models.ErrEventNotFound, "id %q", id)
	}
}

func TestEventRepositoryGetAll(t *testing.T) {
	repo, dataDir := newEventRepo(t)

	first, err := repo.Create("First")
	require.NoError(t, err)
	second, err := repo.Create("Second")
	require.NoError(t, err)

	// A stray directory without a config must not break the listing.
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "not-an-event"), 0o755))

	events, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, events, 2)

	ids := []string{events[0].ID, events[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	// Codes are included: the owner listing shows them.
	assert.NotEmpty(t, events[0].GuestCode)
	assert.NotEmpty(t, events[0].AdminCode)
}

func TestEventRepositoryDelete(t *testing.T) {
	repo, dataDir := newEventRepo(t)

	event, err := repo.Create("Short lived")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(event.ID))

	_, err = repo.GetByID(event.ID)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
	assert.NoDirExists(t, filepath.Join(dataDir, event.ID))

	assert.ErrorIs(t, repo.Delete(event.ID), models.ErrEventNotFound)
}
