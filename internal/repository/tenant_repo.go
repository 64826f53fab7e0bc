package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepo(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// List retrieves tenants for an owner, optionally narrowed to one property
func (r *TenantRepository) List(ownerID, propertyID string) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := scopeProperty(r.db.Model(&models.Tenant{}), "tenants", ownerID, propertyID).
		Order("tenants.created_at ASC").
		Find(&tenants).Error
	return tenants, err
}

// ListByRoom retrieves the tenants assigned to a room
func (r *TenantRepository) ListByRoom(roomID string) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Where("room_id = ?", roomID).Find(&tenants).Error
	return tenants, err
}

// GetByID retrieves a tenant in the owner's scope
func (r *TenantRepository) GetByID(ownerID, id string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := scopeProperty(r.db.Model(&models.Tenant{}), "tenants", ownerID, "").
		Where("tenants.id = ?", id).
		First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("tenant not found")
		}
		return nil, err
	}
	return &tenant, nil
}

// CreateWithRoomOccupied creates a tenant and marks the room occupied in a
// single transaction
func (r *TenantRepository) CreateWithRoomOccupied(tenant *models.Tenant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).
			Where("id = ?", tenant.RoomID).
			Update("status", models.RoomOccupied).Error
	})
}

// Update persists changes to a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// UpdatePaymentStatus sets a tenant's payment status
func (r *TenantRepository) UpdatePaymentStatus(tenantID, status string) error {
	result := r.db.Model(&models.Tenant{}).
		Where("id = ?", tenantID).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("tenant not found")
	}
	return nil
}

// ListUnpaid retrieves tenants still marked unpaid, for the overdue sweep
func (r *TenantRepository) ListUnpaid() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Where("payment_status = ?", models.TenantUnpaid).Find(&tenants).Error
	return tenants, err
}
