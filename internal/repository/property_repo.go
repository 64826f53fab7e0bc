package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepo(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// ListByOwner retrieves all properties belonging to an owner
func (r *PropertyRepository) ListByOwner(ownerID string) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&properties).Error
	return properties, err
}

// GetByID retrieves a property by ID scoped to its owner
func (r *PropertyRepository) GetByID(ownerID, propertyID string) (*models.Property, error) {
	var property models.Property
	err := r.db.Where("id = ? AND owner_id = ?", propertyID, ownerID).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("property not found")
		}
		return nil, err
	}
	return &property, nil
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// Update persists changes to a property scoped to its owner
func (r *PropertyRepository) Update(ownerID string, property *models.Property) error {
	result := r.db.Model(&models.Property{}).
		Where("id = ? AND owner_id = ?", property.ID, ownerID).
		Updates(map[string]interface{}{
			"name":        property.Name,
			"address":     property.Address,
			"total_rooms": property.TotalRooms,
			"description": property.Description,
			"facilities":  property.Facilities,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("property not found")
	}
	return nil
}

// Delete removes a property scoped to its owner
func (r *PropertyRepository) Delete(ownerID, propertyID string) error {
	result := r.db.Where("id = ? AND owner_id = ?", propertyID, ownerID).
		Delete(&models.Property{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("property not found")
	}
	return nil
}

// CountByOwner counts the properties belonging to an owner
func (r *PropertyRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Property{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
