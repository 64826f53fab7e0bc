package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type UtilityMeterRepository struct {
	db *gorm.DB
}

func NewUtilityMeterRepo(db *gorm.DB) *UtilityMeterRepository {
	return &UtilityMeterRepository{db: db}
}

// List retrieves meter readings for an owner, optionally narrowed to one room
func (r *UtilityMeterRepository) List(ownerID, roomID string) ([]models.UtilityMeter, error) {
	var meters []models.UtilityMeter
	query := scopeProperty(r.db.Model(&models.UtilityMeter{}), "utility_meters", ownerID, "").
		Order("utility_meters.reading_date DESC")
	if roomID != "" {
		query = query.Where("utility_meters.room_id = ?", roomID)
	}
	err := query.Find(&meters).Error
	return meters, err
}

// GetLatestByRoomAndType retrieves the most recent reading for a room's
// meter. A room with no readings yet returns nil without error so callers
// can tell a fresh meter apart from a failing datasource.
func (r *UtilityMeterRepository) GetLatestByRoomAndType(roomID, meterType string) (*models.UtilityMeter, error) {
	var meter models.UtilityMeter
	err := r.db.Where("room_id = ? AND meter_type = ?", roomID, meterType).
		Order("reading_date DESC").
		First(&meter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meter, nil
}

// Create creates a new meter reading
func (r *UtilityMeterRepository) Create(meter *models.UtilityMeter) error {
	return r.db.Create(meter).Error
}
