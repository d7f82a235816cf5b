package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/repository"
	"github.com/snapfest/snapfest-backend/internal/service"
)

const testOwnerToken = "owner-secret-for-tests"

func newAccessFixture(t *testing.T) (*service.AccessService, *models.Event) {
	t.Helper()
	eventRepo, err := repository.NewEventRepository(t.TempDir(), repository.NewEventLocks())
	require.NoError(t, err)

	event, err := eventRepo.Create("Access test")
	require.NoError(t, err)

	return service.NewAccessService(eventRepo, testOwnerToken), event
}

func TestVerifyCode(t *testing.T) {
	access, event := newAccessFixture(t)

	role, err := access.VerifyCode(event.ID, event.GuestCode)
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)

	role, err = access.VerifyCode(event.ID, event.AdminCode)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = access.VerifyCode(event.ID, "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = access.VerifyCode(event.ID, "")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = access.VerifyCode("event_missing", event.GuestCode)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestAuthorizeAdminAction(t *testing.T) {
	access, event := newAccessFixture(t)

	assert.NoError(t, access.AuthorizeAdminAction(event.ID, event.AdminCode))

	// The guest code never authorizes admin actions.
	assert.ErrorIs(t, access.AuthorizeAdminAction(event.ID, event.GuestCode), models.ErrUnauthorized)
	assert.ErrorIs(t, access.AuthorizeAdminAction(event.ID, "wrong"), models.ErrUnauthorized)
	assert.ErrorIs(t, access.AuthorizeAdminAction("event_missing", event.AdminCode), models.ErrEventNotFound)
}

func TestVerifyOwnerToken(t *testing.T) {
	access, _ := newAccessFixture(t)

	assert.True(t, access.VerifyOwnerToken(testOwnerToken))
	assert.False(t, access.VerifyOwnerToken("nope"))
	assert.False(t, access.VerifyOwnerToken(""))
}
