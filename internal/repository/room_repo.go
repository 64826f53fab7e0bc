package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List retrieves rooms for an owner, optionally narrowed to one property
func (r *RoomRepository) List(ownerID, propertyID string) ([]models.Room, error) {
	var rooms []models.Room
	query := scopeProperty(r.db.Model(&models.Room{}), "rooms", ownerID, propertyID).
		Order("rooms.property_id ASC, rooms.room_number ASC")
	err := query.Find(&rooms).Error
	return rooms, err
}

// GetByID retrieves a room in the owner's scope
func (r *RoomRepository) GetByID(ownerID, id string) (*models.Room, error) {
	var room models.Room
	err := scopeProperty(r.db.Model(&models.Room{}), "rooms", ownerID, "").
		Where("rooms.id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room not found")
		}
		return nil, err
	}
	return &room, nil
}

// Create creates a new room
func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// Update persists changes to a room
func (r *RoomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

// UpdateStatus sets a room's status
func (r *RoomRepository) UpdateStatus(roomID, status string) error {
	result := r.db.Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("room not found")
	}
	return nil
}

// Delete removes a room
func (r *RoomRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("room not found")
	}
	return nil
}
