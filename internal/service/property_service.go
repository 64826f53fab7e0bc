package service

import (
	"fmt"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

type PropertyService struct {
	propertyRepo *repository.PropertyRepository
	auditRepo    *repository.AuditRepository
}

func NewPropertyService(propertyRepo *repository.PropertyRepository, auditRepo *repository.AuditRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		auditRepo:    auditRepo,
	}
}

// List retrieves the owner's properties
func (s *PropertyService) List(ownerID string) ([]models.Property, error) {
	return s.propertyRepo.ListByOwner(ownerID)
}

// Get retrieves one property scoped to the owner
func (s *PropertyService) Get(ownerID, propertyID string) (*models.Property, error) {
	return s.propertyRepo.GetByID(ownerID, propertyID)
}

// Create creates a property under the owner
func (s *PropertyService) Create(ownerID, actorID string, property *models.Property) error {
	property.OwnerID = ownerID
	if err := s.propertyRepo.Create(property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	details := fmt.Sprintf("Created property: %s (%s)", property.Name, property.ID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "property_create", details)

	return nil
}

// Update persists changes to an owned property
func (s *PropertyService) Update(ownerID, actorID string, property *models.Property) error {
	if err := s.propertyRepo.Update(ownerID, property); err != nil {
		return err
	}

	details := fmt.Sprintf("Updated property: %s (%s)", property.Name, property.ID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "property_update", details)

	return nil
}

// Delete removes an owned property
func (s *PropertyService) Delete(ownerID, actorID, propertyID string) error {
	if err := s.propertyRepo.Delete(ownerID, propertyID); err != nil {
		return err
	}

	details := fmt.Sprintf("Deleted property %s", propertyID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "property_delete", details)

	return nil
}
