package service

import (
	"testing"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFormService(t *testing.T) (*FormService, *models.Property, *models.Room) {
	db := testDB(t)
	property, room := seedProperty(t, db, "owner-1")

	tenantRepo := repository.NewTenantRepo(db)
	tenant := &models.Tenant{
		PropertyID:  property.ID,
		RoomID:      room.ID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		CheckInDate: time.Now().UTC(),
	}
	require.NoError(t, tenantRepo.CreateWithRoomOccupied(tenant))

	svc := NewFormService(repository.NewRoomRepo(db), tenantRepo)
	return svc, property, room
}

func TestRoomOptionsForProperty(t *testing.T) {
	svc, property, room := setupFormService(t)

	set, err := svc.RoomOptions("owner-1", property.ID)
	require.NoError(t, err)
	assert.False(t, set.Disabled)
	require.Len(t, set.Items, 1)
	assert.Equal(t, room.ID, set.Items[0].ID)
	assert.Equal(t, "Kamar 101", set.Items[0].Label)
}

func TestRoomOptionsDisabledWithoutProperty(t *testing.T) {
	svc, _, _ := setupFormService(t)

	set, err := svc.RoomOptions("owner-1", "")
	require.NoError(t, err)
	assert.True(t, set.Disabled)
	assert.Empty(t, set.Items)
}

func TestTenantOptionsForRoom(t *testing.T) {
	svc, _, room := setupFormService(t)

	set, err := svc.TenantOptions("owner-1", room.ID)
	require.NoError(t, err)
	assert.False(t, set.Disabled)
	require.Len(t, set.Items, 1)
	assert.Equal(t, "Budi Santoso", set.Items[0].Label)

	// A room with no tenants is enabled but empty
	set, err = svc.TenantOptions("owner-1", "no-such-room")
	require.NoError(t, err)
	assert.False(t, set.Disabled)
	assert.Empty(t, set.Items)
}

func TestTenantOptionsDisabledWithoutRoom(t *testing.T) {
	svc, _, _ := setupFormService(t)

	set, err := svc.TenantOptions("owner-1", "")
	require.NoError(t, err)
	assert.True(t, set.Disabled)
	assert.Empty(t, set.Items)
}
