package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CanteenProduct represents an item sold through a property's canteen
type CanteenProduct struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	PropertyID  string    `gorm:"not null;size:36;index" json:"property_id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null" json:"stock"`
	Category    string    `gorm:"size:50;default:'makanan'" json:"category"`
	PhotoURL    string    `gorm:"size:500" json:"photo_url"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for CanteenProduct model
func (CanteenProduct) TableName() string {
	return "canteen_products"
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *CanteenProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CanteenTransaction represents a single canteen sale. TotalPrice is a
// snapshot of product price times quantity at sale time.
type CanteenTransaction struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	PropertyID      string    `gorm:"not null;size:36;index" json:"property_id"`
	ProductID       string    `gorm:"not null;size:36;index" json:"product_id"`
	TenantID        *string   `gorm:"size:36" json:"tenant_id,omitempty"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	TotalPrice      float64   `gorm:"not null" json:"total_price"`
	TransactionDate time.Time `json:"transaction_date"`
	Notes           string    `gorm:"size:500" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	// Relationships
	Product CanteenProduct `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for CanteenTransaction model
func (CanteenTransaction) TableName() string {
	return "canteen_transactions"
}

// BeforeCreate assigns a UUID primary key when none is set
func (t *CanteenTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
