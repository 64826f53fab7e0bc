package service

import (
	"errors"
	"fmt"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
	"kostify-backend/pkg/utils"
)

type PengelolaService struct {
	userRepo     *repository.UserRepository
	propertyRepo *repository.PropertyRepository
	auditRepo    *repository.AuditRepository
}

func NewPengelolaService(
	userRepo *repository.UserRepository,
	propertyRepo *repository.PropertyRepository,
	auditRepo *repository.AuditRepository,
) *PengelolaService {
	return &PengelolaService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		auditRepo:    auditRepo,
	}
}

func validatePermissions(permissions []string) error {
	known := make(map[string]bool, len(models.KnownPermissions))
	for _, p := range models.KnownPermissions {
		known[p] = true
	}
	for _, p := range permissions {
		if !known[p] {
			return fmt.Errorf("unknown permission %q", p)
		}
	}
	return nil
}

// Create invites a pengelola under the owner, optionally scoped to one of
// the owner's properties
func (s *PengelolaService) Create(ownerID string, email, password, fullName, phone string, propertyID *string, permissions []string) (*models.User, error) {
	existing, err := s.userRepo.FindUserByEmail(email)
	if err == nil && existing != nil {
		return nil, errors.New("email already registered")
	}

	if err := validatePermissions(permissions); err != nil {
		return nil, err
	}
	if propertyID != nil && *propertyID != "" {
		if _, err := s.propertyRepo.GetByID(ownerID, *propertyID); err != nil {
			return nil, fmt.Errorf("property not found: %w", err)
		}
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	pengelola := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Phone:        phone,
		Role:         models.RolePengelola,
		IsActive:     true,
		OwnerID:      &ownerID,
		PropertyID:   propertyID,
		Permissions:  permissions,
	}

	if err := s.userRepo.CreateUser(pengelola); err != nil {
		return nil, fmt.Errorf("failed to create pengelola: %w", err)
	}

	details := fmt.Sprintf("Invited pengelola %s", email)
	_ = s.auditRepo.CreateAuditLog(&ownerID, "pengelola_create", details)

	return pengelola, nil
}

// List retrieves the owner's pengelola accounts
func (s *PengelolaService) List(ownerID string) ([]models.User, error) {
	return s.userRepo.ListPengelolaByOwner(ownerID)
}

// Update changes a pengelola's profile, property scope and permissions
func (s *PengelolaService) Update(ownerID string, pengelola *models.User) error {
	if err := validatePermissions(pengelola.Permissions); err != nil {
		return err
	}
	if pengelola.PropertyID != nil && *pengelola.PropertyID != "" {
		if _, err := s.propertyRepo.GetByID(ownerID, *pengelola.PropertyID); err != nil {
			return fmt.Errorf("property not found: %w", err)
		}
	}

	if err := s.userRepo.UpdatePengelola(ownerID, pengelola); err != nil {
		return err
	}

	details := fmt.Sprintf("Updated pengelola %s", pengelola.ID)
	_ = s.auditRepo.CreateAuditLog(&ownerID, "pengelola_update", details)

	return nil
}

// Delete removes a pengelola account owned by the owner
func (s *PengelolaService) Delete(ownerID, pengelolaID string) error {
	if err := s.userRepo.DeletePengelola(ownerID, pengelolaID); err != nil {
		return err
	}

	details := fmt.Sprintf("Removed pengelola %s", pengelolaID)
	_ = s.auditRepo.CreateAuditLog(&ownerID, "pengelola_delete", details)

	return nil
}
