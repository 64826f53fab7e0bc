package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status values.
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Payment represents a rent payment submitted for manual approval,
// usually backed by an uploaded proof of transfer
type Payment struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	TenantID      string    `gorm:"not null;size:36;index" json:"tenant_id"`
	PropertyID    string    `gorm:"not null;size:36;index" json:"property_id"`
	RoomID        string    `gorm:"not null;size:36" json:"room_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	PaymentMethod string    `gorm:"size:30;default:'transfer'" json:"payment_method"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	ProofURL      string    `gorm:"size:500" json:"proof_url"`
	Notes         string    `gorm:"size:500" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
