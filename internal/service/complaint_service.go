package service

import (
	"errors"
	"fmt"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

var validComplaintStatuses = map[string]bool{
	models.ComplaintOpen:       true,
	models.ComplaintInProgress: true,
	models.ComplaintResolved:   true,
}

var validPriorities = map[string]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
}

type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
	tenantRepo    *repository.TenantRepository
	auditRepo     *repository.AuditRepository
}

func NewComplaintService(
	complaintRepo *repository.ComplaintRepository,
	tenantRepo *repository.TenantRepository,
	auditRepo *repository.AuditRepository,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		tenantRepo:    tenantRepo,
		auditRepo:     auditRepo,
	}
}

// List retrieves complaints in the owner's scope, narrowed by optional
// property and status filters
func (s *ComplaintService) List(ownerID, propertyID, status string) ([]models.Complaint, error) {
	if status != "" && !validComplaintStatuses[status] {
		return nil, errors.New("invalid complaint status")
	}
	return s.complaintRepo.List(ownerID, propertyID, status)
}

// Create records a complaint from a tenant in the owner's scope, pinned to
// the tenant's property and room
func (s *ComplaintService) Create(ownerID, actorID string, complaint *models.Complaint) error {
	tenant, err := s.tenantRepo.GetByID(ownerID, complaint.TenantID)
	if err != nil {
		return fmt.Errorf("tenant not found: %w", err)
	}

	complaint.PropertyID = tenant.PropertyID
	complaint.RoomID = tenant.RoomID
	if complaint.Status == "" {
		complaint.Status = models.ComplaintOpen
	}
	if complaint.Priority == "" {
		complaint.Priority = models.PriorityMedium
	}
	if !validPriorities[complaint.Priority] {
		return errors.New("invalid complaint priority")
	}

	if err := s.complaintRepo.Create(complaint); err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	details := fmt.Sprintf("Created complaint %q for tenant %s", complaint.Title, complaint.TenantID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "complaint_create", details)

	return nil
}

// UpdateStatus transitions the status of a complaint in the owner's scope
func (s *ComplaintService) UpdateStatus(ownerID, actorID, complaintID, status string) error {
	if !validComplaintStatuses[status] {
		return errors.New("invalid complaint status")
	}

	if err := s.complaintRepo.UpdateStatus(ownerID, complaintID, status); err != nil {
		return err
	}

	details := fmt.Sprintf("Complaint %s moved to %s", complaintID, status)
	_ = s.auditRepo.CreateAuditLog(&actorID, "complaint_status", details)

	return nil
}
