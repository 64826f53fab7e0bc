package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint status values.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
)

// Complaint priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Complaint represents a tenant-reported issue against a room
type Complaint struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TenantID    string    `gorm:"not null;size:36;index" json:"tenant_id"`
	PropertyID  string    `gorm:"not null;size:36;index" json:"property_id"`
	RoomID      string    `gorm:"not null;size:36" json:"room_id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"not null;size:2000" json:"description"`
	Status      string    `gorm:"size:20;default:'open'" json:"status"`
	Priority    string    `gorm:"size:20;default:'medium'" json:"priority"`
	Photos      []string  `gorm:"serializer:json" json:"photos"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// BeforeCreate assigns a UUID primary key when none is set
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
