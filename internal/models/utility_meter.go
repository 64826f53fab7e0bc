package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meter types tracked per room.
const (
	MeterListrik = "listrik"
	MeterAir     = "air"
)

// UtilityMeter represents one meter reading for a room. TotalCost is
// computed once when the reading is recorded and is the value of record
// afterwards; usage is always current minus previous.
type UtilityMeter struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	RoomID          string    `gorm:"not null;size:36;index" json:"room_id"`
	PropertyID      string    `gorm:"not null;size:36;index" json:"property_id"`
	MeterType       string    `gorm:"not null;size:20" json:"meter_type"`
	ReadingDate     time.Time `gorm:"not null" json:"reading_date"`
	CurrentReading  float64   `gorm:"not null" json:"current_reading"`
	PreviousReading float64   `gorm:"default:0" json:"previous_reading"`
	CostPerUnit     float64   `gorm:"not null" json:"cost_per_unit"`
	TotalCost       float64   `gorm:"default:0" json:"total_cost"`
	Notes           string    `gorm:"size:500" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName specifies the table name for UtilityMeter model
func (UtilityMeter) TableName() string {
	return "utility_meters"
}

// BeforeCreate assigns a UUID primary key when none is set
func (m *UtilityMeter) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Usage returns the metered consumption for this reading.
func (m *UtilityMeter) Usage() float64 {
	return m.CurrentReading - m.PreviousReading
}
