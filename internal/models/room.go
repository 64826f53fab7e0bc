package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room status values.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

// Room represents a rentable room within a property
type Room struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	PropertyID string    `gorm:"not null;size:36;index" json:"property_id"`
	RoomNumber string    `gorm:"not null;size:20" json:"room_number"`
	RoomType   string    `gorm:"size:50" json:"room_type"`
	Price      float64   `gorm:"not null" json:"price"`
	Status     string    `gorm:"size:20;default:'available'" json:"status"`
	Facilities []string  `gorm:"serializer:json" json:"facilities"`
	Photos     []string  `gorm:"serializer:json" json:"photos"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// BeforeCreate assigns a UUID primary key when none is set
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
