package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant payment status values.
const (
	TenantPaid    = "paid"
	TenantUnpaid  = "unpaid"
	TenantOverdue = "overdue"
)

// Tenant represents the current occupant of a room
type Tenant struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	PropertyID    string     `gorm:"not null;size:36;index" json:"property_id"`
	RoomID        string     `gorm:"not null;size:36;index" json:"room_id"`
	FullName      string     `gorm:"not null;size:100" json:"full_name"`
	Email         string     `gorm:"not null;size:255" json:"email"`
	Phone         string     `gorm:"size:30" json:"phone"`
	IDCardNumber  string     `gorm:"size:50" json:"id_card_number"`
	CheckInDate   time.Time  `gorm:"not null" json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date,omitempty"`
	PaymentStatus string     `gorm:"size:20;default:'unpaid'" json:"payment_status"`
	DepositAmount float64    `gorm:"default:0" json:"deposit_amount"`
	DepositStatus string     `gorm:"size:20;default:'unpaid'" json:"deposit_status"`
	CreatedAt     time.Time  `json:"created_at"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate assigns a UUID primary key when none is set
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
