package service

import (
	"errors"
	"fmt"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

var validRoomStatuses = map[string]bool{
	models.RoomAvailable:   true,
	models.RoomOccupied:    true,
	models.RoomMaintenance: true,
}

type RoomService struct {
	roomRepo     *repository.RoomRepository
	propertyRepo *repository.PropertyRepository
	auditRepo    *repository.AuditRepository
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	propertyRepo *repository.PropertyRepository,
	auditRepo *repository.AuditRepository,
) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		auditRepo:    auditRepo,
	}
}

// List retrieves rooms in the owner's scope, optionally narrowed to one
// property. An explicit property must belong to the owner.
func (s *RoomService) List(ownerID, propertyID string) ([]models.Room, error) {
	if propertyID != "" {
		if _, err := s.propertyRepo.GetByID(ownerID, propertyID); err != nil {
			return nil, err
		}
	}
	return s.roomRepo.List(ownerID, propertyID)
}

// Create creates a room under one of the owner's properties
func (s *RoomService) Create(ownerID, actorID string, room *models.Room) error {
	if _, err := s.propertyRepo.GetByID(ownerID, room.PropertyID); err != nil {
		return fmt.Errorf("property not found: %w", err)
	}

	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if !validRoomStatuses[room.Status] {
		return errors.New("invalid room status")
	}

	if err := s.roomRepo.Create(room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	details := fmt.Sprintf("Created room %s in property %s", room.RoomNumber, room.PropertyID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "room_create", details)

	return nil
}

// Update persists changes to a room in the owner's scope
func (s *RoomService) Update(ownerID, actorID string, room *models.Room) error {
	existing, err := s.roomRepo.GetByID(ownerID, room.ID)
	if err != nil {
		return err
	}

	if room.PropertyID != existing.PropertyID {
		if _, err := s.propertyRepo.GetByID(ownerID, room.PropertyID); err != nil {
			return fmt.Errorf("property not found: %w", err)
		}
	}
	if room.Status != "" && !validRoomStatuses[room.Status] {
		return errors.New("invalid room status")
	}

	if err := s.roomRepo.Update(room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	details := fmt.Sprintf("Updated room %s (%s)", room.RoomNumber, room.ID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "room_update", details)

	return nil
}

// Delete removes a room in the owner's scope
func (s *RoomService) Delete(ownerID, actorID, roomID string) error {
	room, err := s.roomRepo.GetByID(ownerID, roomID)
	if err != nil {
		return err
	}

	if err := s.roomRepo.Delete(roomID); err != nil {
		return err
	}

	details := fmt.Sprintf("Deleted room %s (%s)", room.RoomNumber, roomID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "room_delete", details)

	return nil
}
