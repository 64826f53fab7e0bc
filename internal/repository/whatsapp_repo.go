package repository

import (
	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type WhatsAppRepository struct {
	db *gorm.DB
}

func NewWhatsAppRepo(db *gorm.DB) *WhatsAppRepository {
	return &WhatsAppRepository{db: db}
}

// CreateMessage logs an outbound message and its delivery receipt
func (r *WhatsAppRepository) CreateMessage(msg *models.WhatsAppMessage) error {
	return r.db.Create(msg).Error
}

// ListMessagesByOwner retrieves the message log for an owner
func (r *WhatsAppRepository) ListMessagesByOwner(ownerID string) ([]models.WhatsAppMessage, error) {
	var messages []models.WhatsAppMessage
	err := r.db.Where("owner_id = ?", ownerID).
		Order("sent_at DESC").
		Find(&messages).Error
	return messages, err
}
