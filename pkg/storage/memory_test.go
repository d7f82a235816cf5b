package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/pkg/storage"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	store := storage.NewMemoryStorage()
	ctx := context.Background()

	storedName, err := store.Put(ctx, "event_abc", "pic.webp", strings.NewReader("payload"))
	require.NoError(t, err)

	blob, err := store.Get(ctx, "event_abc", storedName)
	require.NoError(t, err)
	data, err := io.ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, store.Delete(ctx, "event_abc", storedName))
	require.NoError(t, store.Delete(ctx, "event_abc", storedName))

	_, err = store.Get(ctx, "event_abc", storedName)
	assert.ErrorIs(t, err, models.ErrBlobNotFound)
}

func TestMemoryStorageRejectsTraversal(t *testing.T) {
	store := storage.NewMemoryStorage()
	ctx := context.Background()

	for _, name := range []string{"../x", "a/b", "", "..", `a\b`} {
		_, err := store.Get(ctx, "event_abc", name)
		assert.ErrorIs(t, err, models.ErrBlobNotFound, "Get with %q", name)
	}
}

func TestMemoryStorageDeleteEvent(t *testing.T) {
	store := storage.NewMemoryStorage()
	ctx := context.Background()

	mine, err := store.Put(ctx, "event_a", "a.png", strings.NewReader("one"))
	require.NoError(t, err)
	other, err := store.Put(ctx, "event_b", "b.png", strings.NewReader("two"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteEvent(ctx, "event_a"))

	_, err = store.Get(ctx, "event_a", mine)
	assert.ErrorIs(t, err, models.ErrBlobNotFound)

	blob, err := store.Get(ctx, "event_b", other)
	require.NoError(t, err)
	blob.Close()
}
