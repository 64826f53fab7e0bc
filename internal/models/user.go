package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values for the users table.
const (
	RoleOwner     = "owner"
	RolePengelola = "pengelola"
)

// Permission tags grantable to a pengelola account.
const (
	PermManageRooms      = "manage_rooms"
	PermManageTenants    = "manage_tenants"
	PermManagePayments   = "manage_payments"
	PermManageComplaints = "manage_complaints"
	PermManageCanteen    = "manage_canteen"
	PermManageUtilities  = "manage_utilities"
)

// KnownPermissions lists every grantable permission tag.
var KnownPermissions = []string{
	PermManageRooms,
	PermManageTenants,
	PermManagePayments,
	PermManageComplaints,
	PermManageCanteen,
	PermManageUtilities,
}

// User represents the users table. Owners and pengelola share the table;
// a pengelola carries the inviting owner's ID, an optional property scope
// and a permission tag set.
type User struct {
	ID                 string     `gorm:"primaryKey;size:36" json:"id"`
	Email              string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash       string     `gorm:"not null;size:255" json:"-"`
	FullName           string     `gorm:"not null;size:100" json:"full_name"`
	Phone              string     `gorm:"size:30" json:"phone"`
	Role               string     `gorm:"size:20;default:'owner'" json:"role"`
	OwnerID            *string    `gorm:"size:36;index" json:"owner_id,omitempty"`
	PropertyID         *string    `gorm:"size:36;index" json:"property_id,omitempty"`
	Permissions        []string   `gorm:"serializer:json" json:"permissions"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	SubscriptionStatus string     `gorm:"size:20;default:'trial'" json:"subscription_status"`
	TrialEndDate       *time.Time `json:"trial_end_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key when none is set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasPermission reports whether the user may perform actions gated by the
// given tag. Owners implicitly hold every permission.
func (u *User) HasPermission(tag string) bool {
	if u.Role == RoleOwner {
		return true
	}
	for _, p := range u.Permissions {
		if p == tag {
			return true
		}
	}
	return false
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;size:36;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
