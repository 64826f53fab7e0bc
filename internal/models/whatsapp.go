package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WhatsAppMessage logs an outbound broadcast message and the gateway's
// delivery receipt for it.
type WhatsAppMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"not null;size:36;index" json:"owner_id"`
	TenantID  string    `gorm:"size:36" json:"tenant_id"`
	Recipient string    `gorm:"not null;size:30" json:"recipient"`
	Body      string    `gorm:"not null;size:2000" json:"body"`
	MessageID string    `gorm:"size:100" json:"message_id"`
	Status    string    `gorm:"size:20" json:"status"`
	SentAt    time.Time `json:"sent_at"`
}

// TableName specifies the table name for WhatsAppMessage model
func (WhatsAppMessage) TableName() string {
	return "whatsapp_messages"
}

// BeforeCreate assigns a UUID primary key when none is set
func (m *WhatsAppMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
