package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property represents a kost (boarding house) owned by a user
type Property struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string    `gorm:"not null;size:36;index" json:"owner_id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Address     string    `gorm:"not null;size:500" json:"address"`
	TotalRooms  int       `gorm:"not null" json:"total_rooms"`
	Description string    `gorm:"size:1000" json:"description"`
	Facilities  []string  `gorm:"serializer:json" json:"facilities"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Property model
func (Property) TableName() string {
	return "properties"
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
