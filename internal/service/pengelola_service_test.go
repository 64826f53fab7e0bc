package service

import (
	"testing"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPengelolaService(t *testing.T) (*PengelolaService, *models.Property) {
	db := testDB(t)
	property, _ := seedProperty(t, db, "owner-1")

	svc := NewPengelolaService(
		repository.NewUserRepo(db),
		repository.NewPropertyRepo(db),
		repository.NewAuditRepo(db),
	)
	return svc, property
}

func TestPengelolaCreate(t *testing.T) {
	svc, property := setupPengelolaService(t)

	pengelola, err := svc.Create("owner-1", "pengelola@example.com", "rahasia1", "Pak Pengelola", "0811111111",
		&property.ID, []string{models.PermManageRooms, models.PermManagePayments})
	require.NoError(t, err)

	assert.Equal(t, models.RolePengelola, pengelola.Role)
	require.NotNil(t, pengelola.OwnerID)
	assert.Equal(t, "owner-1", *pengelola.OwnerID)
	assert.True(t, pengelola.HasPermission(models.PermManageRooms))
	assert.False(t, pengelola.HasPermission(models.PermManageCanteen))

	listed, err := svc.List("owner-1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestPengelolaCreateRejectsUnknownPermission(t *testing.T) {
	svc, _ := setupPengelolaService(t)

	_, err := svc.Create("owner-1", "pengelola@example.com", "rahasia1", "Pak Pengelola", "0811111111",
		nil, []string{"manage_everything"})
	assert.ErrorContains(t, err, "unknown permission")
}

func TestPengelolaCreateRejectsForeignProperty(t *testing.T) {
	svc, property := setupPengelolaService(t)

	_, err := svc.Create("other-owner", "pengelola@example.com", "rahasia1", "Pak Pengelola", "0811111111",
		&property.ID, nil)
	assert.ErrorContains(t, err, "property not found")
}

func TestPengelolaDelete(t *testing.T) {
	svc, _ := setupPengelolaService(t)

	pengelola, err := svc.Create("owner-1", "pengelola@example.com", "rahasia1", "Pak Pengelola", "0811111111", nil, nil)
	require.NoError(t, err)

	// Another owner cannot delete someone else's pengelola
	err = svc.Delete("other-owner", pengelola.ID)
	assert.Error(t, err)

	require.NoError(t, svc.Delete("owner-1", pengelola.ID))

	listed, err := svc.List("owner-1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
