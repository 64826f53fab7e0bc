package service

import (
	"errors"
	"fmt"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

var validMeterTypes = map[string]bool{
	models.MeterListrik: true,
	models.MeterAir:     true,
}

type UtilityService struct {
	meterRepo *repository.UtilityMeterRepository
	roomRepo  *repository.RoomRepository
	auditRepo *repository.AuditRepository
}

func NewUtilityService(
	meterRepo *repository.UtilityMeterRepository,
	roomRepo *repository.RoomRepository,
	auditRepo *repository.AuditRepository,
) *UtilityService {
	return &UtilityService{
		meterRepo: meterRepo,
		roomRepo:  roomRepo,
		auditRepo: auditRepo,
	}
}

// List retrieves meter readings in the owner's scope, optionally narrowed
// to one room
func (s *UtilityService) List(ownerID, roomID string) ([]models.UtilityMeter, error) {
	return s.meterRepo.List(ownerID, roomID)
}

// Create records a meter reading for a room in the owner's scope. The
// previous reading is taken from the latest entry for the same room and
// meter type (zero for a first reading), and the total cost is computed
// exactly once here, from usage times cost per unit; later reads echo the
// stored value.
func (s *UtilityService) Create(ownerID, actorID string, meter *models.UtilityMeter) error {
	if !validMeterTypes[meter.MeterType] {
		return errors.New("invalid meter type")
	}

	room, err := s.roomRepo.GetByID(ownerID, meter.RoomID)
	if err != nil {
		return fmt.Errorf("room not found: %w", err)
	}
	meter.PropertyID = room.PropertyID

	latest, err := s.meterRepo.GetLatestByRoomAndType(meter.RoomID, meter.MeterType)
	if err != nil {
		return fmt.Errorf("failed to resolve previous reading: %w", err)
	}
	if latest != nil {
		meter.PreviousReading = latest.CurrentReading
	}
	if meter.CurrentReading < meter.PreviousReading {
		return errors.New("current reading is below previous reading")
	}

	meter.TotalCost = (meter.CurrentReading - meter.PreviousReading) * meter.CostPerUnit
	if meter.ReadingDate.IsZero() {
		meter.ReadingDate = time.Now().UTC()
	}

	if err := s.meterRepo.Create(meter); err != nil {
		return fmt.Errorf("failed to record meter reading: %w", err)
	}

	details := fmt.Sprintf("Recorded %s reading %.2f for room %s", meter.MeterType, meter.CurrentReading, meter.RoomID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "meter_reading_create", details)

	return nil
}
