package repository

import (
	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog records an action in the audit trail
func (r *AuditRepository) CreateAuditLog(userID *string, action, details string) error {
	log := models.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	return r.db.Create(&log).Error
}
