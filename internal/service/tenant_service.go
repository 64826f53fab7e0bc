package service

import (
	"errors"
	"fmt"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

type TenantService struct {
	tenantRepo   *repository.TenantRepository
	roomRepo     *repository.RoomRepository
	propertyRepo *repository.PropertyRepository
	auditRepo    *repository.AuditRepository
}

func NewTenantService(
	tenantRepo *repository.TenantRepository,
	roomRepo *repository.RoomRepository,
	propertyRepo *repository.PropertyRepository,
	auditRepo *repository.AuditRepository,
) *TenantService {
	return &TenantService{
		tenantRepo:   tenantRepo,
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		auditRepo:    auditRepo,
	}
}

// List retrieves tenants in the owner's scope, optionally narrowed to one
// property
func (s *TenantService) List(ownerID, propertyID string) ([]models.Tenant, error) {
	if propertyID != "" {
		if _, err := s.propertyRepo.GetByID(ownerID, propertyID); err != nil {
			return nil, err
		}
	}
	return s.tenantRepo.List(ownerID, propertyID)
}

// Get retrieves one tenant in the owner's scope
func (s *TenantService) Get(ownerID, tenantID string) (*models.Tenant, error) {
	return s.tenantRepo.GetByID(ownerID, tenantID)
}

// Create checks the tenant's room against the selected property and creates
// the tenant, marking the room occupied. The room must belong to the chosen
// property; a mismatched pair is rejected rather than silently accepted.
func (s *TenantService) Create(ownerID, actorID string, tenant *models.Tenant) error {
	if _, err := s.propertyRepo.GetByID(ownerID, tenant.PropertyID); err != nil {
		return fmt.Errorf("property not found: %w", err)
	}

	room, err := s.roomRepo.GetByID(ownerID, tenant.RoomID)
	if err != nil {
		return fmt.Errorf("room not found: %w", err)
	}
	if room.PropertyID != tenant.PropertyID {
		return errors.New("room does not belong to the selected property")
	}
	if room.Status == models.RoomOccupied {
		return errors.New("room is already occupied")
	}

	if tenant.PaymentStatus == "" {
		tenant.PaymentStatus = models.TenantUnpaid
	}
	if tenant.DepositStatus == "" {
		tenant.DepositStatus = models.TenantUnpaid
	}

	if err := s.tenantRepo.CreateWithRoomOccupied(tenant); err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	details := fmt.Sprintf("Created tenant %s in room %s", tenant.FullName, tenant.RoomID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "tenant_create", details)

	return nil
}

// Update persists changes to a tenant in the owner's scope
func (s *TenantService) Update(ownerID, actorID string, tenant *models.Tenant) error {
	if _, err := s.tenantRepo.GetByID(ownerID, tenant.ID); err != nil {
		return err
	}

	if err := s.tenantRepo.Update(tenant); err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	details := fmt.Sprintf("Updated tenant %s (%s)", tenant.FullName, tenant.ID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "tenant_update", details)

	return nil
}
