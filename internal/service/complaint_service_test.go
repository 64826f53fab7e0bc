package service

import (
	"testing"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupComplaintService(t *testing.T) (*ComplaintService, *models.Tenant) {
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

	svc := NewComplaintService(
		repository.NewComplaintRepo(db),
		tenantRepo,
		repository.NewAuditRepo(db),
	)
	return svc, tenant
}

func TestComplaintCreatePinsTenantLocation(t *testing.T) {
	svc, tenant := setupComplaintService(t)

	complaint := &models.Complaint{
		TenantID:    tenant.ID,
		Title:       "AC rusak",
		Description: "AC kamar tidak dingin sejak kemarin",
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", complaint))

	assert.Equal(t, tenant.PropertyID, complaint.PropertyID)
	assert.Equal(t, tenant.RoomID, complaint.RoomID)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Equal(t, models.PriorityMedium, complaint.Priority)
}

func TestComplaintStatusLifecycle(t *testing.T) {
	svc, tenant := setupComplaintService(t)

	complaint := &models.Complaint{
		TenantID:    tenant.ID,
		Title:       "AC rusak",
		Description: "AC kamar tidak dingin sejak kemarin",
		Priority:    models.PriorityHigh,
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", complaint))

	require.NoError(t, svc.UpdateStatus("owner-1", "owner-1", complaint.ID, models.ComplaintInProgress))

	listed, err := svc.List("owner-1", "", models.ComplaintInProgress)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, complaint.ID, listed[0].ID)

	// Resolved complaints drop out of the in_progress filter
	require.NoError(t, svc.UpdateStatus("owner-1", "owner-1", complaint.ID, models.ComplaintResolved))
	listed, err = svc.List("owner-1", "", models.ComplaintInProgress)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestComplaintRejectsInvalidValues(t *testing.T) {
	svc, tenant := setupComplaintService(t)

	complaint := &models.Complaint{
		TenantID:    tenant.ID,
		Title:       "AC rusak",
		Description: "AC kamar tidak dingin",
		Priority:    "urgent",
	}
	assert.EqualError(t, svc.Create("owner-1", "owner-1", complaint), "invalid complaint priority")

	valid := &models.Complaint{
		TenantID:    tenant.ID,
		Title:       "AC rusak",
		Description: "AC kamar tidak dingin",
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", valid))
	assert.EqualError(t, svc.UpdateStatus("owner-1", "owner-1", valid.ID, "closed"), "invalid complaint status")
}

func TestComplaintUpdateOutsideOwnerScope(t *testing.T) {
	svc, tenant := setupComplaintService(t)

	complaint := &models.Complaint{
		TenantID:    tenant.ID,
		Title:       "AC rusak",
		Description: "AC kamar tidak dingin sejak kemarin",
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", complaint))

	err := svc.UpdateStatus("owner-2", "owner-2", complaint.ID, models.ComplaintResolved)
	assert.EqualError(t, err, "complaint not found")

	listed, err := svc.List("owner-1", "", models.ComplaintOpen)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, complaint.ID, listed[0].ID)
}
